package siadc09

import (
	"strings"
	"testing"
	"time"

	"github.com/sia-dc09/siadc09d/internal/account"
	"github.com/sia-dc09/siadc09d/internal/counter"
)

// body extracts the framed response's payload between the CRC+length
// prefix and the trailing '\r', mirroring how response_test.go inspects
// Build's output.
func body(resp []byte) string {
	if len(resp) < 10 {
		return string(resp)
	}
	return string(resp[9 : len(resp)-1])
}

func TestProcessFrameUnencryptedClosingReportACK(t *testing.T) {
	acct, err := account.New("AAA", "", nil, nil)
	if err != nil {
		t.Fatalf("account.New: %v", err)
	}
	reg := account.NewRegistry(acct)
	counters := &counter.Counters{}

	line := `E5D50078"SIA-DCS"6002L0#AAA[|Nri1/CL501]_14:12:04,09-25-2019`
	resp, evt := ProcessFrame(reg, counters, time.Now(), line)

	b := body(resp)
	if !strings.HasPrefix(b, `"ACK"6002`) {
		t.Fatalf("body = %q, want prefix \"ACK\"6002", b)
	}
	if !strings.Contains(b, "#AAA") {
		t.Fatalf("body = %q, want to contain #AAA", b)
	}

	sia, ok := evt.(SIAEvent)
	if !ok {
		t.Fatalf("evt = %T, want SIAEvent", evt)
	}
	if sia.Code != "CL" {
		t.Fatalf("Code = %q, want CL", sia.Code)
	}
	if sia.RI != "1" {
		t.Fatalf("RI = %q, want 1", sia.RI)
	}
	if sia.Verdict != ACK {
		t.Fatalf("Verdict = %v, want ACK", sia.Verdict)
	}
	if !sia.IsDispatchable() {
		t.Fatalf("expected the event to be dispatchable")
	}
}

func TestProcessFrameUnknownCodeDUH(t *testing.T) {
	acct, err := account.New("AAA", "", nil, nil)
	if err != nil {
		t.Fatalf("account.New: %v", err)
	}
	reg := account.NewRegistry(acct)
	counters := &counter.Counters{}

	line := `A68D0078"SIA-DCS"6002L0#AAA[|Nri1/ZX000]_14:12:04,09-25-2019`
	resp, evt := ProcessFrame(reg, counters, time.Now(), line)

	b := body(resp)
	if !strings.HasPrefix(b, `"DUH"6002`) {
		t.Fatalf("body = %q, want prefix \"DUH\"6002", b)
	}
	if !strings.Contains(b, "#AAA") {
		t.Fatalf("body = %q, want to contain #AAA", b)
	}

	sia, ok := evt.(SIAEvent)
	if !ok {
		t.Fatalf("evt = %T, want SIAEvent", evt)
	}
	if sia.Verdict != DUH {
		t.Fatalf("Verdict = %v, want DUH", sia.Verdict)
	}
	if sia.IsDispatchable() {
		t.Fatalf("a DUH event must not be dispatched to the callback")
	}
}

func TestProcessFrameBadCRCIsSilentDiscard(t *testing.T) {
	acct, err := account.New("AAA", "", nil, nil)
	if err != nil {
		t.Fatalf("account.New: %v", err)
	}
	reg := account.NewRegistry(acct)
	counters := &counter.Counters{}

	// scenario 1's line with one hex digit of the CRC prefix flipped.
	line := `E5D40078"SIA-DCS"6002L0#AAA[|Nri1/CL501]_14:12:04,09-25-2019`
	resp, evt := ProcessFrame(reg, counters, time.Now(), line)

	if len(resp) != 0 {
		t.Fatalf("resp = %q, want no bytes written for a bad-CRC frame", resp)
	}
	if evt.ResponseVerdict() != NoReply {
		t.Fatalf("ResponseVerdict = %v, want NoReply", evt.ResponseVerdict())
	}
	if snap := counters.Snapshot(); snap.CRC != 1 {
		t.Fatalf("CRC counter = %d, want 1", snap.CRC)
	}
}

func TestProcessFrameUnknownAccountNAK(t *testing.T) {
	acct, err := account.New("AAA", "", nil, nil)
	if err != nil {
		t.Fatalf("account.New: %v", err)
	}
	reg := account.NewRegistry(acct) // registry lacks BBB
	counters := &counter.Counters{}

	line := `B4E20078"SIA-DCS"6002L0#BBB[|Nri1/CL501]_14:12:04,09-25-2019`
	resp, evt := ProcessFrame(reg, counters, time.Now(), line)

	b := body(resp)
	if !strings.HasPrefix(b, `"NAK"0000R0L0A0[]_`) {
		t.Fatalf("body = %q, want prefix \"NAK\"0000R0L0A0[]_", b)
	}
	if evt.ResponseVerdict() != NAK {
		t.Fatalf("ResponseVerdict = %v, want NAK", evt.ResponseVerdict())
	}
	if snap := counters.Snapshot(); snap.Account != 1 {
		t.Fatalf("Account counter = %d, want 1", snap.Account)
	}
}

func TestProcessFrameEncryptedNullHeartbeatACK(t *testing.T) {
	acct := account.Account{ID: "AAA", Key: []byte("AAAAAAAAAAAAAAAA")}
	reg := account.NewRegistry(acct)
	counters := &counter.Counters{}

	// The hex ciphertext below is AES-128-CBC (key "AAAAAAAAAAAAAAAA",
	// zero IV) of the left-zero-padded plaintext "]_14:12:04,09-25-2019".
	const hexCipher = `8CC6C342CDE4C6B395E21DAF8E1C37C85F0CE24E2BC59FD9A9FF958090B2E37B`
	line := `8E1E0000"*NULL"0000L0#AAA[` + hexCipher

	now := time.Date(2019, 9, 25, 14, 12, 4, 0, time.UTC)
	resp, evt := ProcessFrame(reg, counters, now, line)

	b := body(resp)
	if !strings.Contains(b, `"*ACK"`) {
		t.Fatalf("body = %q, want to contain \"*ACK\"", b)
	}

	sia, ok := evt.(SIAEvent)
	if !ok {
		t.Fatalf("evt = %T, want SIAEvent", evt)
	}
	if sia.Code != "RP" {
		t.Fatalf("Code = %q, want RP", sia.Code)
	}
	if sia.RI != "0" {
		t.Fatalf("RI = %q, want 0", sia.RI)
	}
	if sia.Verdict != ACK {
		t.Fatalf("Verdict = %v, want ACK", sia.Verdict)
	}
}

func TestProcessFrameOHHeartbeatACK(t *testing.T) {
	reg := account.NewRegistry() // OH frames never consult the registry
	counters := &counter.Counters{}

	line := `SR0001L0001    006969XX    [ID00000000]`
	resp, evt := ProcessFrame(reg, counters, time.Now(), line)

	if string(resp) != `"ACK"` {
		t.Fatalf("resp = %q, want literal \"ACK\"", resp)
	}

	sia, ok := evt.(SIAEvent)
	if !ok {
		t.Fatalf("evt = %T, want SIAEvent", evt)
	}
	if sia.MessageType != "OH" {
		t.Fatalf("MessageType = %q, want OH", sia.MessageType)
	}
	if sia.Code != "RP" {
		t.Fatalf("Code = %q, want RP", sia.Code)
	}
	if sia.RI != "0" {
		t.Fatalf("RI = %q, want 0", sia.RI)
	}
	if !sia.IsDispatchable() {
		t.Fatalf("expected the OH heartbeat to be dispatchable")
	}
}
