package classify

import "testing"

func TestFormatErrorWinsOverEverything(t *testing.T) {
	v, r := Classify(Input{FormatError: true, CRCValid: false, HasAccount: false})
	if v != NAK || r != ReasonFormat {
		t.Fatalf("Classify = (%v, %v), want (NAK, format)", v, r)
	}
}

func TestCRCMismatchIsSilentDiscard(t *testing.T) {
	v, r := Classify(Input{HasAccount: true, CRCValid: false, TimestampValid: true, MessageType: "SIA-DCS", CodeKnown: true})
	if v != NoReply || r != ReasonCRC {
		t.Fatalf("Classify = (%v, %v), want (NoReply, crc)", v, r)
	}
}

func TestUnknownAccountIsNAK(t *testing.T) {
	v, r := Classify(Input{HasAccount: false, CRCValid: true, TimestampValid: true})
	if v != NAK || r != ReasonAccount {
		t.Fatalf("Classify = (%v, %v), want (NAK, account)", v, r)
	}
}

func TestUnknownCodeIsDUHForSIADCSOnly(t *testing.T) {
	v, r := Classify(Input{HasAccount: true, CRCValid: true, TimestampValid: true, MessageType: "SIA-DCS", CodeKnown: false})
	if v != DUH || r != ReasonCode {
		t.Fatalf("Classify = (%v, %v), want (DUH, code)", v, r)
	}

	v, r = Classify(Input{HasAccount: true, CRCValid: true, TimestampValid: true, MessageType: "ADM-CID", CodeKnown: false})
	if v != ACK || r != ReasonNone {
		t.Fatalf("Classify(ADM-CID, unknown code) = (%v, %v), want (ACK, none) -- code-known rule is SIA-DCS-only", v, r)
	}
}

func TestRSPXDataTakesPrecedenceOverPlainACK(t *testing.T) {
	v, r := Classify(Input{HasAccount: true, CRCValid: true, TimestampValid: true, MessageType: "SIA-DCS", CodeKnown: true, HasRSPXData: true})
	if v != RSP || r != ReasonNone {
		t.Fatalf("Classify = (%v, %v), want (RSP, none)", v, r)
	}
}

func TestOHHeartbeatIsACK(t *testing.T) {
	v, r := Classify(Input{HasAccount: true, CRCValid: true, TimestampValid: true, MessageType: "OH"})
	if v != ACK || r != ReasonNone {
		t.Fatalf("Classify = (%v, %v), want (ACK, none)", v, r)
	}
}

func TestPlainACK(t *testing.T) {
	v, r := Classify(Input{HasAccount: true, CRCValid: true, TimestampValid: true, MessageType: "SIA-DCS", CodeKnown: true})
	if v != ACK || r != ReasonNone {
		t.Fatalf("Classify = (%v, %v), want (ACK, none)", v, r)
	}
}
