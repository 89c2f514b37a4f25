// Package account implements the Account Registry: account identity,
// construction-time validation, and an atomic copy-on-replace lookup
// table keyed by account id.
package account

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Construction-time validation failures. These are the only errors the
// pipeline surfaces to the caller rather than recovering locally — an
// invalid account or key must be fixed before the client starts.
var (
	ErrInvalidAccountFormat = errors.New("account: id is not uppercase hexadecimal")
	ErrInvalidAccountLength = errors.New("account: id length must be between 3 and 16 characters")
	ErrInvalidKeyFormat     = errors.New("account: key is not valid hexadecimal")
	ErrInvalidKeyLength     = errors.New("account: key length must be 16, 24, or 32 characters")
)

// Timeband is the (before, after) window, in seconds, a timestamp must
// fall within to be considered valid. A nil Timeband disables timestamp
// validation for the account.
type Timeband struct {
	Before time.Duration
	After  time.Duration
}

// Account is the identity and crypto/timing configuration of one panel.
// Once constructed an Account is never mutated in place; registry
// updates replace it wholesale.
type Account struct {
	ID              string
	Key             []byte // nil when the account is unencrypted
	Timeband        *Timeband
	DeviceTimezone  *time.Location
}

// Encrypted reports whether frames from this account are expected to
// carry an AES-encrypted body.
func (a Account) Encrypted() bool {
	return len(a.Key) > 0
}

// New validates id and an optional key and constructs an Account.
// keyHex must be 16, 24, or 32 hexadecimal characters (either case);
// its characters are used as the raw AES-128/192/256 key bytes. keyHex
// may be empty for an unencrypted account. tz may be nil, defaulting to
// UTC.
func New(id string, keyHex string, tb *Timeband, tz *time.Location) (Account, error) {
	id = strings.ToUpper(id)
	if len(id) < 3 || len(id) > 16 {
		return Account{}, fmt.Errorf("%q: %w", id, ErrInvalidAccountLength)
	}
	if !isUpperHex(id) {
		return Account{}, fmt.Errorf("%q: %w", id, ErrInvalidAccountFormat)
	}

	var key []byte
	if keyHex != "" {
		if !isUpperHex(strings.ToUpper(keyHex)) {
			return Account{}, fmt.Errorf("account %s key: %w", id, ErrInvalidKeyFormat)
		}
		switch len(keyHex) {
		case 16, 24, 32:
		default:
			return Account{}, fmt.Errorf("account %s key: %w", id, ErrInvalidKeyLength)
		}
		key = []byte(keyHex)
	}

	if tz == nil {
		tz = time.UTC
	}
	return Account{ID: id, Key: key, Timeband: tb, DeviceTimezone: tz}, nil
}

func isUpperHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Registry is a lock-free-read, copy-on-replace account table keyed by
// account id. The zero value is an empty, usable Registry.
type Registry struct {
	accounts atomic.Value // map[string]Account
}

// NewRegistry constructs a Registry seeded with accounts.
func NewRegistry(accounts ...Account) *Registry {
	r := &Registry{}
	r.Replace(accounts)
	return r
}

// Lookup returns the account for id (case-insensitive) and whether it
// was found. Safe to call concurrently with Replace.
func (r *Registry) Lookup(id string) (Account, bool) {
	m, _ := r.accounts.Load().(map[string]Account)
	a, ok := m[strings.ToUpper(id)]
	return a, ok
}

// Snapshot returns the current full set of accounts. The returned map
// must not be mutated by the caller.
func (r *Registry) Snapshot() map[string]Account {
	m, _ := r.accounts.Load().(map[string]Account)
	return m
}

// Replace atomically swaps in a new account set. Readers already holding
// a snapshot via Lookup/Snapshot continue to see the old, consistent
// view until they call Lookup/Snapshot again.
func (r *Registry) Replace(accounts []Account) {
	m := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		m[a.ID] = a
	}
	r.accounts.Store(m)
}
