package response

import (
	"strings"
	"testing"

	"github.com/sia-dc09/siadc09d/internal/crc"
)

func TestBuildUnencryptedACKContainsSequenceAndAccount(t *testing.T) {
	out, err := Build(Request{Verdict: "ACK", Sequence: "6002", Line: "0", Account: "AAA"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	body := string(out[9 : len(out)-1])
	if !strings.Contains(body, `"ACK"6002`) {
		t.Fatalf("body = %q, want to contain \"ACK\"6002", body)
	}
	if !strings.Contains(body, "#AAA") {
		t.Fatalf("body = %q, want to contain #AAA", body)
	}
}

func TestFrameCRCMatchesCRCEngine(t *testing.T) {
	out, err := Build(Request{Verdict: "DUH", Sequence: "6002", Line: "0", Account: "AAA"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if out[0] != '\n' || out[len(out)-1] != '\r' {
		t.Fatalf("response not framed with leading LF / trailing CR: %q", out)
	}
	crcHex := string(out[1:5])
	body := string(out[9 : len(out)-1])
	want := crc.HexString(crc.Compute(body))
	if crcHex != want {
		t.Fatalf("frame CRC = %q, want %q (computed over body %q)", crcHex, want, body)
	}
}

func TestBuildNAKFormat(t *testing.T) {
	out := BuildNAK("14:12:04,09-25-2019")
	body := string(out[9 : len(out)-1])
	if body != `"NAK"0000R0L0A0[]_14:12:04,09-25-2019` {
		t.Fatalf("NAK body = %q", body)
	}
}

func TestBuildOHIsUnframed(t *testing.T) {
	out := BuildOH()
	if string(out) != `"ACK"` {
		t.Fatalf("OH response = %q, want literal \"ACK\"", out)
	}
}

func TestEncryptedResponseBodyLengthIsBlockAligned(t *testing.T) {
	key := []byte("AAAAAAAAAAAAAAAA")
	out, err := Build(Request{
		Verdict:   "ACK",
		Sequence:  "0000",
		Line:      "0",
		Account:   "AAA",
		Encrypted: true,
		Key:       key,
		Timestamp: "14:12:04,09-25-2019",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(string(out), `"*ACK"`) {
		t.Fatalf("response = %q, want to contain \"*ACK\"", out)
	}
	// the hex ciphertext runs from the body's '[' to the trailing '\r';
	// two hex digits per byte, so a 16-byte block is 32 hex digits.
	hexCipher := string(out[strings.Index(string(out), "[")+1 : len(out)-1])
	if len(hexCipher) == 0 || len(hexCipher)%32 != 0 {
		t.Fatalf("encrypted body %q is %d hex digits, want a non-zero multiple of 32", hexCipher, len(hexCipher))
	}
}
