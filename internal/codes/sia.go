// Package codes holds the three static lookup tables the content parser
// and event classifier consult: SIA two-letter event codes, the
// Contact-ID-to-SIA translation table, and the extended-data (xdata)
// identifier descriptors.
package codes

// SIACode describes one two-letter SIA event code.
type SIACode struct {
	Code        string
	Type        string
	Description string
	Concerns    string
}

// SIACodes maps a two-letter SIA code to its descriptor. The set below
// covers every code reachable through the Contact-ID translation table
// except RL (event type 577, qualifier 1), plus the codes used directly
// in SIA-DCS traffic; a code absent from
// this table is "code not found" and drives the DUH verdict for
// SIA-DCS frames.
var SIACodes = buildSIACodes()

func buildSIACodes() map[string]SIACode {
	rows := []SIACode{
		{"MA", "Burglary", "Medical alarm", "Life safety"},
		{"MH", "Burglary", "Medical alarm restore", "Life safety"},
		{"QA", "Burglary", "Emergency alarm", "Life safety"},
		{"QH", "Burglary", "Emergency alarm restore", "Life safety"},
		{"FA", "Fire", "Fire alarm", "Life safety"},
		{"FH", "Fire", "Fire alarm restore", "Life safety"},
		{"WA", "Fire", "Water flow alarm", "Life safety"},
		{"WH", "Fire", "Water flow restore", "Life safety"},
		{"KA", "Fire", "Smoke alarm", "Life safety"},
		{"KH", "Fire", "Smoke alarm restore", "Life safety"},
		{"PA", "Burglary", "Panic alarm", "Life safety"},
		{"PH", "Burglary", "Panic alarm restore", "Life safety"},
		{"HA", "Burglary", "Duress alarm", "Life safety"},
		{"HH", "Burglary", "Duress alarm restore", "Life safety"},
		{"BA", "Burglary", "Burglary alarm", "Property"},
		{"BH", "Burglary", "Burglary alarm restore", "Property"},
		{"TA", "Trouble", "Tamper alarm", "Property"},
		{"TR", "Trouble", "Tamper restore", "Property"},
		{"ET", "Trouble", "Extended trouble", "Property"},
		{"ER", "Trouble", "Extended trouble restore", "Property"},
		{"UA", "Burglary", "Untyped alarm", "Property"},
		{"UH", "Burglary", "Untyped alarm restore", "Property"},
		{"GA", "Burglary", "General alarm", "Property"},
		{"GH", "Burglary", "General alarm restore", "Property"},
		{"ZA", "Burglary", "Freeze alarm", "Property"},
		{"ZH", "Burglary", "Freeze alarm restore", "Property"},
		{"YX", "Supervisory", "Service required/trouble", "Supervisory"},
		{"YZ", "Supervisory", "Service required/trouble restore", "Supervisory"},
		{"AT", "Trouble", "AC power trouble", "Power"},
		{"AR", "Trouble", "AC power restore", "Power"},
		{"YT", "Trouble", "Long range radio trouble", "Supervisory"},
		{"YR", "Trouble", "Long range radio trouble restore", "Supervisory"},
		{"YM", "Trouble", "Loss of system peripheral", "Supervisory"},
		{"YP", "Trouble", "Polling loop open", "Supervisory"},
		{"YQ", "Trouble", "Polling loop open restore", "Supervisory"},
		{"RC", "Test", "Remote programming success", "Maintenance"},
		{"RO", "Test", "Remote programming fail", "Maintenance"},
		{"VO", "Trouble", "Video loss", "Supervisory"},
		{"VI", "Trouble", "Video loss restore", "Supervisory"},
		{"VT", "Trouble", "Voice trouble", "Supervisory"},
		{"VR", "Trouble", "Voice trouble restore", "Supervisory"},
		{"YC", "Trouble", "Communications trouble", "Supervisory"},
		{"YK", "Trouble", "Communications trouble restore", "Supervisory"},
		{"LT", "Trouble", "Local programming trouble", "Maintenance"},
		{"LR", "Trouble", "Local programming restore", "Maintenance"},
		{"FT", "Trouble", "Fire trouble", "Life safety"},
		{"FJ", "Trouble", "Fire trouble restore", "Life safety"},
		{"EA", "Trouble", "Exception/not closed during arming", "Opening/Closing"},
		{"PT", "Trouble", "Phone line trouble", "Supervisory"},
		{"PJ", "Trouble", "Phone line restore", "Supervisory"},
		{"HT", "Trouble", "Holdup trouble", "Life safety"},
		{"HR", "Trouble", "Holdup trouble restore", "Life safety"},
		{"OP", "Opening/Closing", "Opening report", "Opening/Closing"},
		{"CL", "Opening/Closing", "Closing report", "Opening/Closing"},
		{"OB", "Opening/Closing", "Opening by user", "Opening/Closing"},
		{"CB", "Opening/Closing", "Closing by user", "Opening/Closing"},
		{"OA", "Opening/Closing", "Automatic opening", "Opening/Closing"},
		{"CA", "Opening/Closing", "Automatic closing", "Opening/Closing"},
		{"OC", "Opening/Closing", "Cancel report", "Opening/Closing"},
		{"OQ", "Opening/Closing", "Quick arm opening", "Opening/Closing"},
		{"CQ", "Opening/Closing", "Quick arm closing", "Opening/Closing"},
		{"OS", "Opening/Closing", "Opening, no entry/exit", "Opening/Closing"},
		{"CS", "Opening/Closing", "Closing, no entry/exit", "Opening/Closing"},
		{"RB", "Opening/Closing", "Recent closing", "Opening/Closing"},
		{"DD", "Opening/Closing", "Access denied", "Opening/Closing"},
		{"DF", "Opening/Closing", "Access denied, forced", "Opening/Closing"},
		{"CG", "Opening/Closing", "Close early/late", "Opening/Closing"},
		{"OI", "Opening/Closing", "Open interior", "Opening/Closing"},
		{"CI", "Opening/Closing", "Close interior/fail to close", "Opening/Closing"},
		{"OG", "Opening/Closing", "Open early/late restore", "Opening/Closing"},
		{"EE", "Opening/Closing", "Exception close", "Opening/Closing"},
		{"DO", "Opening/Closing", "Access opening", "Opening/Closing"},
		{"YY", "Test", "Service/test", "Maintenance"},
		{"BB", "Trouble", "Busy seconds", "Supervisory"},
		{"FB", "Trouble", "Fail to report", "Supervisory"},
		{"BU", "Trouble", "Busy seconds restore", "Supervisory"},
		{"RX", "Test", "Manual test report", "Maintenance"},
		{"RP", "Test", "Automatic test report / heartbeat", "Maintenance"},
		{"FX", "Trouble", "Forced point", "Property"},
		{"FK", "Trouble", "Forced point restore", "Property"},
		{"TX", "Test", "Test end", "Maintenance"},
		{"JL", "Opening/Closing", "Log threshold exceeded", "Maintenance"},
		{"JO", "Opening/Closing", "Log overflow", "Maintenance"},
		{"JT", "Opening/Closing", "Latchkey report", "Opening/Closing"},
		{"JD", "Opening/Closing", "Early/late to close", "Opening/Closing"},
		{"LB", "Opening/Closing", "Local program ended", "Maintenance"},
		{"LX", "Opening/Closing", "Local program denied", "Maintenance"},
		{"JS", "Opening/Closing", "Supervisor point", "Opening/Closing"},
		{"NA", "Burglary", "Notify alarm", "Property"},
		{"RR", "Test", "Power-up restart report", "Maintenance"},
		{"HV", "Burglary", "Holdup confirmed", "Life safety"},
		{"BS", "Supervisory", "Signal/ring disconnect", "Supervisory"},
		{"BJ", "Supervisory", "Signal/ring restore", "Supervisory"},
		{"UT", "Trouble", "Power unit fault", "Power"},
		{"UJ", "Trouble", "Power unit restore", "Power"},
		{"US", "Trouble", "Bolt lock unlocked", "Property"},
		{"UR", "Trouble", "Bolt lock locked", "Property"},
		{"YW", "Supervisory", "Device switched on", "Supervisory"},
		{"XI", "Supervisory", "Device reset to factory", "Supervisory"},
		{"ZZ", "Supervisory", "Device switched off", "Supervisory"},
		{"ZY", "Supervisory", "Device switched on", "Supervisory"},
		{"YS", "Trouble", "Server/monitoring connection lost", "Supervisory"},
		{"TB", "Trouble", "Lid notifications disabled/bypass", "Property"},
		{"TU", "Trouble", "Lid notifications enabled/unbypass", "Property"},
		{"XT", "Trouble", "Low battery (device)", "Power"},
		{"XR", "Trouble", "Low battery restore (device)", "Power"},
		{"PF", "Trouble", "Camera connection lost", "Supervisory"},
		{"PO", "Trouble", "Camera connection restored", "Supervisory"},
		{"NL", "Opening/Closing", "Night mode activated", "Opening/Closing"},
		{"NP", "Opening/Closing", "Night mode deactivated", "Opening/Closing"},
		{"CC", "Opening/Closing", "Auto arming failed", "Opening/Closing"},
		{"CR", "Opening/Closing", "Recent closing alarm", "Opening/Closing"},
		{"JA", "Burglary", "Unauthorized access attempt", "Property"},
		{"EN", "Supervisory", "Antenna connected", "Supervisory"},
		{"EM", "Supervisory", "Antenna disconnected", "Supervisory"},
		{"ES", "Trouble", "Enclosure tamper", "Property"},
		{"PC", "Test", "Photo on demand enabled", "Maintenance"},
		{"PD", "Test", "Photo on demand disabled", "Maintenance"},
		{"KG", "Property", "Keypad/switch locked/unlocked", "Property"},
		{"BX", "Test", "Self-test passed", "Maintenance"},
		{"PE", "Test", "Photo by scenario enabled", "Maintenance"},
		{"PG", "Test", "Photo by scenario disabled", "Maintenance"},
		{"AE", "Power", "Battery saving mode entered", "Power"},
		{"AY", "Power", "Battery saving mode exited", "Power"},
	}
	m := make(map[string]SIACode, len(rows))
	for _, r := range rows {
		m[r.Code] = r
	}
	return m
}

// Lookup returns the descriptor for a two-letter SIA code and whether it
// was found.
func Lookup(code string) (SIACode, bool) {
	c, ok := SIACodes[code]
	return c, ok
}
