package codes

// XData describes one extended-data identifier that may appear inside a
// frame's trailing "[X...][Y...]" blocks.
type XData struct {
	Identifier  string
	Name        string
	Description string
	Length      int
	Characters  string
}

// RSPIdentifiers is the set of xdata identifiers that force a RSP verdict
// rather than a plain ACK — currently only the key-exchange request.
var RSPIdentifiers = map[string]bool{
	"K": true,
}

// XDataTable maps a single xdata identifier character to its descriptor.
var XDataTable = map[string]XData{
	"A": {Identifier: "A", Name: "Authentication Hash", Length: 12, Characters: "ASCII",
		Description: "A hash of the message that allows the message to be authenticated."},
	"C": {Identifier: "C", Name: "Supervision Category", Length: 64, Characters: "ASCII",
		Description: "An identifier for the number of communication paths and link supervision category"},
	"H": {Identifier: "H", Name: "Time of Occurence", Length: 21, Characters: "ASCII",
		Description: "Time that event occurred (may be different than message time stamp)"},
	"I": {Identifier: "I", Name: "Alarm Text", Length: 256, Characters: "Win1252",
		Description: "Alarm text which may be a description of the event or a comment regarding the event."},
	"J": {Identifier: "J", Name: "Network Path", Length: 1, Characters: "ASCII",
		Description: "Manufacturer specific identifier for the path that was used for the communication"},
	"K": {Identifier: "K", Name: "Encryption Key", Length: 64, Characters: "ASCII",
		Description: "Key exchange request from CSR to PE (up to 256 bits)"},
	"L": {Identifier: "L", Name: "Location", Length: 256, Characters: "Win1252",
		Description: "Location of event on site"},
	"M": {Identifier: "M", Name: "MAC Address", Length: 12, Characters: "ASCII",
		Description: "MAC address of the PE."},
	"N": {Identifier: "N", Name: "Network Address", Length: 128, Characters: "ASCII",
		Description: "Hardware network address associated with the communication on path used."},
	"O": {Identifier: "O", Name: "Building Name", Length: 256, Characters: "Win1252",
		Description: "Building name."},
	"P": {Identifier: "P", Name: "Authentication Hash", Length: 256, Characters: "Win1252",
		Description: "contains a message used to support programming or other interactive operations with the receiver"},
	"R": {Identifier: "R", Name: "Room", Length: 256, Characters: "Win1252",
		Description: "Room of the event."},
	"S": {Identifier: "S", Name: "Site name", Length: 256, Characters: "Win1252",
		Description: "Site name describing the premises."},
	"T": {Identifier: "T", Name: "Alarm Trigger", Length: 1, Characters: "ASCII",
		Description: "Trigger for the event."},
	"V": {Identifier: "V", Name: "Verification", Length: 256, Characters: "Win1252",
		Description: "information about audio or video information that may be associated with the event report."},
	"X": {Identifier: "X", Name: "Longitude", Length: 12, Characters: "ASCII",
		Description: "Location of event, longitude."},
	"Y": {Identifier: "Y", Name: "Latitude", Length: 12, Characters: "ASCII",
		Description: "Location of event, latitude."},
	"Z": {Identifier: "Z", Name: "Altitude", Length: 12, Characters: "ASCII",
		Description: "Location of event, altitude."},
}
