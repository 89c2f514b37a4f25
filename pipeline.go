package siadc09

import (
	"strings"
	"time"

	"github.com/sia-dc09/siadc09d/internal/account"
	"github.com/sia-dc09/siadc09d/internal/classify"
	"github.com/sia-dc09/siadc09d/internal/codes"
	"github.com/sia-dc09/siadc09d/internal/content"
	"github.com/sia-dc09/siadc09d/internal/counter"
	"github.com/sia-dc09/siadc09d/internal/crc"
	"github.com/sia-dc09/siadc09d/internal/crypto"
	"github.com/sia-dc09/siadc09d/internal/envelope"
	"github.com/sia-dc09/siadc09d/internal/response"
)

const timestampLayout = "15:04:05,01-02-2006"

// ProcessFrame is the pure pipeline orchestrator: it takes one
// already-framed line of text (the protocol adapters own finding the
// frame boundaries) and produces the bytes to write back to the peer,
// plus the classified Event. It performs no I/O itself, so both the TCP
// and UDP adapters can share it. now is passed in rather than read from
// the clock so the function stays pure and trivially testable.
func ProcessFrame(registry *account.Registry, counters *counter.Counters, now time.Time, line string) ([]byte, Event) {
	counters.IncEvents()

	frame, err := envelope.Parse(line)
	if err != nil {
		counters.IncFormat()
		evt := NAKEvent{Timestamp: now.UTC()}
		return response.BuildNAK(formatTimestamp(now.UTC())), evt
	}

	if frame.OH {
		counters.IncValid()
		evt := SIAEvent{
			MessageType: "OH",
			Account:     frame.OHAccount,
			Receiver:    frame.OHReceiver,
			Line:        frame.OHLine,
			ID:          frame.OHID,
			Code:        "RP",
			RI:          "0",
			Verdict:     ACK,
		}
		return response.BuildOH(), evt
	}

	crcCalc := crc.Compute(frame.FullMessageForCRC)
	crcValid := crc.HexString(crcCalc) == frame.CRCSent

	acct, found := registry.Lookup(frame.Account)
	if frame.Encrypted && !acct.Encrypted() {
		// an encrypted frame needs an account holding a key to decrypt with
		found = false
	}

	in := classify.Input{
		Encrypted:   frame.Encrypted,
		HasAccount:  found,
		CRCValid:    crcValid,
		MessageType: frame.MessageType,
	}

	// CRC failure is a silent discard per the table, but it still must
	// not crash content parsing below -- only decrypt/parse once we
	// know we have a usable account, matching the table's own
	// precedence (account errors are checked before CRC in the source
	// ordering, but the table's row order, which governs here, checks
	// account before CRC already).
	if in.Encrypted && !found {
		counters.IncAccount()
		evt := NAKEvent{Timestamp: now.UTC()}
		return response.BuildNAK(formatTimestamp(now.UTC())), evt
	}
	if !found {
		counters.IncAccount()
		evt := NAKEvent{Timestamp: now.UTC()}
		return response.BuildNAK(formatTimestamp(now.UTC())), evt
	}

	plainBody, bodyErr := decodeBody(acct, frame)
	if bodyErr != nil {
		counters.IncFormat()
		evt := NAKEvent{Timestamp: now.UTC()}
		return response.BuildNAK(formatTimestamp(now.UTC())), evt
	}

	var parsed content.Parsed
	var parseErr error
	if frame.MessageType == "ADM-CID" {
		parsed, parseErr = content.ParseADMCID(plainBody)
	} else {
		parsed, parseErr = content.ParseSIA(plainBody)
	}
	if parseErr != nil {
		counters.IncFormat()
		evt := NAKEvent{Timestamp: now.UTC()}
		return response.BuildNAK(formatTimestamp(now.UTC())), evt
	}

	code := parsed.Code
	if frame.MessageType == "ADM-CID" {
		if translated, ok := codes.TranslateADMCID(parsed.EventType, parsed.EventQualifier); ok {
			code = translated
		}
	}
	if frame.MessageType == "NULL" && code == "" {
		code = "RP"
		if parsed.RI == "" {
			parsed.RI = "0"
		}
	}

	codeKnown := true
	if frame.MessageType == "SIA-DCS" {
		_, codeKnown = codes.Lookup(code)
	}

	eventTime, _ := time.Parse(timestampLayout, parsed.Timestamp)

	timestampValid := true
	if acct.Timeband != nil {
		if parsed.Timestamp == "" {
			timestampValid = false
		} else {
			lower := now.UTC().Add(-acct.Timeband.Before)
			upper := now.UTC().Add(acct.Timeband.After)
			eventUTC := eventTime.UTC()
			timestampValid = !eventUTC.Before(lower) && !eventUTC.After(upper)
		}
	}

	hasRSPXData := false
	var rspXData content.XData
	for _, x := range parsed.XData {
		if codes.RSPIdentifiers[x.Identifier] {
			hasRSPXData = true
			rspXData = x
			break
		}
	}

	in.TimestampValid = timestampValid
	in.CodeKnown = codeKnown
	in.HasRSPXData = hasRSPXData

	verdict, reason := classify.Classify(in)
	switch reason {
	case classify.ReasonFormat:
		counters.IncFormat()
	case classify.ReasonAccount:
		counters.IncAccount()
	case classify.ReasonCRC:
		counters.IncCRC()
	case classify.ReasonTimestamp:
		counters.IncTimestamp()
	case classify.ReasonCode:
		counters.IncCode()
	default:
		counters.IncValid()
	}

	evt := SIAEvent{
		MessageType:    frame.MessageType,
		Account:        frame.Account,
		Sequence:       frame.Sequence,
		Receiver:       frame.Receiver,
		Line:           frame.Line,
		RI:             parsed.RI,
		Code:           code,
		Message:        parsed.Message,
		TI:             parsed.TI,
		ID:             parsed.ID,
		EventQualifier: parsed.EventQualifier,
		EventType:      parsed.EventType,
		Partition:      parsed.Partition,
		XData:          parsed.XData,
		Timestamp:      eventTime,
		Encrypted:      frame.Encrypted,
		Verdict:        verdict,
	}

	switch verdict {
	case NoReply:
		return nil, evt
	case NAK:
		return response.BuildNAK(formatTimestamp(now.UTC())), evt
	}

	req := response.Request{
		Verdict:   verdict.String(),
		Sequence:  frame.Sequence,
		Receiver:  frame.Receiver,
		Line:      frame.Line,
		Account:   frame.Account,
		Encrypted: frame.Encrypted,
		Key:       acct.Key,
	}
	if verdict == RSP {
		req.XData = "[" + rspXData.Identifier + rspXData.Value + "]"
	}
	if frame.Encrypted {
		tz := acct.DeviceTimezone
		if tz == nil {
			tz = time.UTC
		}
		req.Timestamp = formatTimestamp(now.In(tz))
	}
	out, err := response.Build(req)
	if err != nil {
		// Encryption can only fail on a malformed key, which account
		// construction already rejects; treat defensively as a NAK.
		counters.IncAccount()
		return response.BuildNAK(formatTimestamp(now.UTC())), NAKEvent{Timestamp: now.UTC()}
	}
	return out, evt
}

// decodeBody returns the plaintext content-grammar body for frame,
// decrypting and stripping the left-zero padding first if the frame is
// encrypted.
func decodeBody(acct account.Account, frame envelope.Frame) (string, error) {
	if !frame.Encrypted {
		return frame.Body, nil
	}
	padded, err := crypto.Decrypt(acct.Key, frame.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimLeft(string(padded), "0"), nil
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
