// Package counter implements atomic observability counters for the
// pipeline: total events, valid events, and one counter per error
// category.
package counter

import "sync/atomic"

// Counters holds monotonic totals. The zero value is ready to use and
// safe for concurrent use by many goroutines.
type Counters struct {
	events       atomic.Int64
	validEvents  atomic.Int64
	errCRC       atomic.Int64
	errTimestamp atomic.Int64
	errAccount   atomic.Int64
	errCode      atomic.Int64
	errFormat    atomic.Int64
	errUserCode  atomic.Int64
}

// IncEvents increments the total frame count.
func (c *Counters) IncEvents() { c.events.Add(1) }

// IncValid increments the successfully classified event count.
func (c *Counters) IncValid() { c.validEvents.Add(1) }

// IncCRC increments the CRC-mismatch error count.
func (c *Counters) IncCRC() { c.errCRC.Add(1) }

// IncTimestamp increments the out-of-timeband error count.
func (c *Counters) IncTimestamp() { c.errTimestamp.Add(1) }

// IncAccount increments the unknown/missing-account error count.
func (c *Counters) IncAccount() { c.errAccount.Add(1) }

// IncCode increments the unknown-SIA-code error count.
func (c *Counters) IncCode() { c.errCode.Add(1) }

// IncFormat increments the envelope/content grammar mismatch count.
func (c *Counters) IncFormat() { c.errFormat.Add(1) }

// IncUserCode increments the count of callback panics/errors.
func (c *Counters) IncUserCode() { c.errUserCode.Add(1) }

// Snapshot is a point-in-time, non-atomic read of every counter.
type Snapshot struct {
	Events       int64
	ValidEvents  int64
	CRC          int64
	Timestamp    int64
	Account      int64
	Code         int64
	Format       int64
	UserCode     int64
}

// Snapshot reads every counter. Individual fields may not be perfectly
// consistent with one another under concurrent writers, matching the
// atomic-add-only policy of the underlying counters.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Events:      c.events.Load(),
		ValidEvents: c.validEvents.Load(),
		CRC:         c.errCRC.Load(),
		Timestamp:   c.errTimestamp.Load(),
		Account:     c.errAccount.Load(),
		Code:        c.errCode.Load(),
		Format:      c.errFormat.Load(),
		UserCode:    c.errUserCode.Load(),
	}
}
