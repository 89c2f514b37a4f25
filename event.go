package siadc09

import (
	"time"

	"github.com/sia-dc09/siadc09d/internal/classify"
	"github.com/sia-dc09/siadc09d/internal/content"
)

// Verdict is the response outcome for one inbound frame.
type Verdict = classify.Verdict

// The four wire verdicts, plus NoReply for a CRC-failed frame that gets
// no response at all.
const (
	ACK     = classify.ACK
	DUH     = classify.DUH
	NAK     = classify.NAK
	RSP     = classify.RSP
	NoReply = classify.NoReply
)

// Event is the closed sum type every classified frame implements:
// SIAEvent (which also represents the OH-heartbeat and NULL-heartbeat
// cases) and NAKEvent (a structural failure carrying only CRC/account
// discipline, no content).
type Event interface {
	// ResponseVerdict is the outcome the Event Classifier assigned.
	ResponseVerdict() Verdict
	// IsDispatchable reports whether the user callback should receive
	// this event: true iff the verdict is ACK and the event is a
	// SIAEvent (never for a NAKEvent).
	IsDispatchable() bool
}

// XData is one extended-data entry carried in a trailing "[...]" block.
type XData = content.XData

// SIAEvent is a frame fully interpreted: either a native SIA-DCS event,
// an ADM-CID event translated to its SIA equivalent, a NULL keepalive
// (synthesized to code "RP"), or an Osborne-Hoffman heartbeat
// (MessageType "OH", also synthesized to code "RP"). The OH case folds
// into SIAEvent rather than a distinct Go type because it is
// dispatched to the callback exactly like any other SIA event — the
// distinction the reference implementation draws with a subclass needs
// no virtual inheritance here.
type SIAEvent struct {
	MessageType string // "SIA-DCS", "ADM-CID", "NULL", "OH"
	Account     string
	Sequence    string
	Receiver    string
	Line        string

	RI      string
	Code    string
	Message string
	TI      string
	ID      string

	// ADM-CID only.
	EventQualifier string
	EventType      string
	Partition      string

	XData     []XData
	Timestamp time.Time // zero if absent/unparsed

	Encrypted bool
	Verdict   Verdict
}

func (e SIAEvent) ResponseVerdict() Verdict { return e.Verdict }

func (e SIAEvent) IsDispatchable() bool {
	return e.Verdict == ACK
}

// NAKEvent represents a frame that failed structurally: envelope/content
// format error, or an unmatched or unusable account. It carries no
// content, only the instant the NAK was generated. A frame NAK'd for a
// timestamp outside the account's timeband is parsed, so it is reported
// as a SIAEvent whose Verdict is NAK instead.
type NAKEvent struct {
	Timestamp time.Time
}

func (e NAKEvent) ResponseVerdict() Verdict { return NAK }
func (e NAKEvent) IsDispatchable() bool     { return false }
