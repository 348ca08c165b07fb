package tagval

import "sync/atomic"

// Channel is a single-slot record of the most recent failure. Writes are
// last-write-wins; nothing is queued. The slot is atomic so a shared
// Channel never tears, but two goroutines sharing one will still see each
// other's codes.
type Channel struct {
	code atomic.Uint32
}

// Set stores code, overwriting any unread code.
func (c *Channel) Set(code Code) {
	c.code.Store(uint32(code))
}

// Record stores the code of err when err is non-nil and returns err.
func (c *Channel) Record(err error) error {
	if err != nil {
		c.Set(CodeOf(err))
	}
	return err
}

// Check reports whether a failure is pending.
func (c *Channel) Check() bool {
	return c.Code() != CodeNone
}

// Code returns the pending code.
func (c *Channel) Code() Code {
	return Code(c.code.Load())
}

// Reset clears the pending code.
func (c *Channel) Reset() {
	c.Set(CodeNone)
}

var defaultChannel Channel

// Default returns the process-wide channel every failing operation in
// this package writes to.
func Default() *Channel {
	return &defaultChannel
}

// Check reports whether the process-wide channel holds a failure.
func Check() bool {
	return defaultChannel.Check()
}

// LastError returns the code held by the process-wide channel.
func LastError() Code {
	return defaultChannel.Code()
}

// Reset clears the process-wide channel.
func Reset() {
	defaultChannel.Reset()
}
