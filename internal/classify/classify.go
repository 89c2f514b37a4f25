// Package classify implements the Event Classifier's decision table:
// given the validation outcomes for one frame, produce exactly one
// response verdict.
package classify

// Verdict is the outcome of classifying one frame.
type Verdict int

const (
	// NoReply means the frame fails CRC and must be silently discarded
	// — no bytes are written back to the peer.
	NoReply Verdict = iota
	ACK
	DUH
	NAK
	RSP
)

// String renders the verdict the way it appears on the wire (NoReply has
// no wire form).
func (v Verdict) String() string {
	switch v {
	case ACK:
		return "ACK"
	case DUH:
		return "DUH"
	case NAK:
		return "NAK"
	case RSP:
		return "RSP"
	default:
		return "NoReply"
	}
}

// Input carries every validation outcome the decision table consults.
// Earlier fields in the table take precedence regardless of the order
// fields are set here; Classify applies the table's row order exactly.
type Input struct {
	// FormatError is true when the envelope or content grammar failed
	// to match at all.
	FormatError bool
	// Encrypted is true when the frame's type tag carried the '*' flag.
	Encrypted bool
	// HasAccount is true when the frame's account id was found in the
	// registry (and, for encrypted frames, carries a usable key).
	HasAccount bool
	// CRCValid is true when the sent and computed CRC matched.
	CRCValid bool
	// TimestampValid is true when the account has no configured
	// timeband, or the event timestamp falls within it.
	TimestampValid bool
	// MessageType is one of "SIA-DCS", "ADM-CID", "NULL", "OH".
	MessageType string
	// CodeKnown is true when the two-letter SIA code was found in the
	// code table. Only consulted for SIA-DCS frames.
	CodeKnown bool
	// HasRSPXData is true when the event carries an xdata identifier
	// that belongs to the RSP-triggering set (e.g. "K").
	HasRSPXData bool
}

// Reason names which counter bucket a classification falls into. It is
// "" for the non-error outcomes (ACK, RSP) — those increment the valid
// events counter instead.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonFormat    Reason = "format"
	ReasonAccount   Reason = "account"
	ReasonCRC       Reason = "crc"
	ReasonTimestamp Reason = "timestamp"
	ReasonCode      Reason = "code"
)

// Classify applies the Event Classifier's decision table in the exact
// row order the table specifies: the first matching row wins. The
// returned Reason names the error-counter bucket for non-ACK/RSP
// verdicts, or ReasonNone for ACK/RSP.
func Classify(in Input) (Verdict, Reason) {
	switch {
	case in.FormatError:
		return NAK, ReasonFormat
	case in.Encrypted && !in.HasAccount:
		return NAK, ReasonAccount
	case !in.HasAccount:
		return NAK, ReasonAccount
	case !in.CRCValid:
		return NoReply, ReasonCRC
	case !in.TimestampValid:
		return NAK, ReasonTimestamp
	case in.MessageType == "SIA-DCS" && !in.CodeKnown:
		return DUH, ReasonCode
	case in.HasRSPXData:
		return RSP, ReasonNone
	case in.MessageType == "OH":
		return ACK, ReasonNone
	default:
		return ACK, ReasonNone
	}
}
