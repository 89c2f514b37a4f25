// Package siadc09 implements a receiver for the SIA DC-09 family of
// alarm-panel reporting protocols (SIA-DCS, ADM-CID, NULL) plus legacy
// Osborne-Hoffman heartbeats.
package siadc09

import (
	"time"

	"github.com/sia-dc09/siadc09d/internal/account"
)

// Account is a panel's identity: id, optional AES key, timestamp
// timeband, and reporting timezone. Construct one with NewAccount; an
// Account is never mutated in place once built.
type Account = account.Account

// Timeband is the (before, after) window a reported timestamp must fall
// within to be accepted.
type Timeband = account.Timeband

// Construction-time validation errors, returned by NewAccount (and by
// configuration loading) for an account that fails these checks, so an
// invalid account never reaches a Client.
var (
	ErrInvalidAccountFormat = account.ErrInvalidAccountFormat
	ErrInvalidAccountLength = account.ErrInvalidAccountLength
	ErrInvalidKeyFormat     = account.ErrInvalidKeyFormat
	ErrInvalidKeyLength     = account.ErrInvalidKeyLength
)

// NewAccount validates id and an optional key and constructs an
// Account. keyHex must be 16, 24, or 32 hexadecimal characters, used
// as the raw AES key bytes; it may be empty for an unencrypted account.
// tz may be nil, defaulting to UTC.
func NewAccount(id, keyHex string, tb *Timeband, tz *time.Location) (Account, error) {
	return account.New(id, keyHex, tb, tz)
}
