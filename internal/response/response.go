// Package response builds the exact wire bytes the receiver sends back
// to a panel: framed, CRC'd, and encrypted when the inbound frame was.
package response

import (
	"fmt"

	"github.com/sia-dc09/siadc09d/internal/crc"
	"github.com/sia-dc09/siadc09d/internal/crypto"
)

// Request describes everything needed to build one non-OH response.
type Request struct {
	Verdict  string // "ACK", "DUH", "RSP" -- never "NAK" or OH, those have dedicated builders
	Sequence string
	Receiver string // without the leading 'R'
	Line     string // without the leading 'L'
	Account  string

	Encrypted bool
	Key       []byte // required when Encrypted is true

	// XData is the raw "[identifier+value]" block(s) to append, or ""
	// for none. For RSP this carries the key-exchange echo, e.g.
	// "[K0123456789ABCDEF]".
	XData string

	// Timestamp is the account-local "HH:MM:SS,MM-DD-YYYY" string,
	// consulted only for Encrypted responses.
	Timestamp string
}

// Build constructs a framed response body for Req.
func Build(req Request) ([]byte, error) {
	if req.Receiver == "" {
		req.Receiver = "0"
	}
	if req.Encrypted {
		return buildEncrypted(req)
	}
	body := fmt.Sprintf(`"%s"%sR%sL%s#%s[]%s`, req.Verdict, req.Sequence, req.Receiver, req.Line, req.Account, req.XData)
	return frame(body), nil
}

func buildEncrypted(req Request) ([]byte, error) {
	plaintext := "]" + req.XData + "_" + req.Timestamp
	hexCipher, err := crypto.Encrypt(req.Key, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt response body: %w", err)
	}
	body := fmt.Sprintf(`"*%s"%sR%sL%s#%s[%s`, req.Verdict, req.Sequence, req.Receiver, req.Line, req.Account, hexCipher)
	return frame(body), nil
}

// BuildNAK constructs the always-unencrypted NAK response, stamped with
// timestampUTC in "HH:MM:SS,MM-DD-YYYY" form.
func BuildNAK(timestampUTC string) []byte {
	body := `"NAK"0000R0L0A0[]_` + timestampUTC
	return frame(body)
}

// BuildOH returns the Osborne-Hoffman heartbeat reply: the literal ASCII
// bytes `"ACK"`, with no CRC/length framing at all.
func BuildOH() []byte {
	return []byte(`"ACK"`)
}

// frame wraps body as `\n<CRC4><LEN4><body>\r`.
func frame(body string) []byte {
	crcHex := crc.HexString(crc.Compute(body))
	lengthHex := fmt.Sprintf("%04X", len(body))
	return []byte("\n" + crcHex + lengthHex + body + "\r")
}
