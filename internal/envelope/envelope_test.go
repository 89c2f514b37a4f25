package envelope

import "testing"

func TestParseUnencryptedClosingReport(t *testing.T) {
	line := `E5D50078"SIA-DCS"6002L0#AAA[|Nri1/CL501]_14:12:04,09-25-2019`
	f, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.OH {
		t.Fatalf("expected a main-grammar frame, got OH")
	}
	if f.CRCSent != "E5D5" {
		t.Fatalf("CRCSent = %q, want E5D5", f.CRCSent)
	}
	if f.MessageType != "SIA-DCS" {
		t.Fatalf("MessageType = %q, want SIA-DCS", f.MessageType)
	}
	if f.Encrypted {
		t.Fatalf("expected unencrypted frame")
	}
	if f.Sequence != "6002" {
		t.Fatalf("Sequence = %q, want 6002", f.Sequence)
	}
	if f.Receiver != "" {
		t.Fatalf("Receiver = %q, want empty", f.Receiver)
	}
	if f.Line != "0" {
		t.Fatalf("Line = %q, want 0", f.Line)
	}
	if f.Account != "AAA" {
		t.Fatalf("Account = %q, want AAA", f.Account)
	}
	wantBody := `|Nri1/CL501]_14:12:04,09-25-2019`
	if f.Body != wantBody {
		t.Fatalf("Body = %q, want %q", f.Body, wantBody)
	}
	wantCRC := `"SIA-DCS"6002L0#AAA[|Nri1/CL501]_14:12:04,09-25-2019`
	if f.FullMessageForCRC != wantCRC {
		t.Fatalf("FullMessageForCRC = %q, want %q", f.FullMessageForCRC, wantCRC)
	}
}

func TestParseOHHeartbeat(t *testing.T) {
	line := `SR0001L0001    006969XX    [ID00000000]`
	f, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !f.OH {
		t.Fatalf("expected an OH frame")
	}
	if f.OHReceiver != "0001" || f.OHLine != "0001" {
		t.Fatalf("OHReceiver/OHLine = %q/%q, want 0001/0001", f.OHReceiver, f.OHLine)
	}
	if f.OHAccount != "006969XX" {
		t.Fatalf("OHAccount = %q, want 006969XX", f.OHAccount)
	}
	if f.OHID != "ID00000000" {
		t.Fatalf("OHID = %q, want ID00000000", f.OHID)
	}
}

func TestParseUnknownFormatFails(t *testing.T) {
	if _, err := Parse("not a valid frame at all"); err != ErrFormat {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
}

func TestParseEncryptedFlag(t *testing.T) {
	line := `E5D50078"*NULL"0000L0#AAA[DEADBEEF`
	f, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !f.Encrypted {
		t.Fatalf("expected Encrypted = true")
	}
	if f.MessageType != "NULL" {
		t.Fatalf("MessageType = %q, want NULL", f.MessageType)
	}
	if f.Body != "DEADBEEF" {
		t.Fatalf("Body = %q, want DEADBEEF", f.Body)
	}
}
