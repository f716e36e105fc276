package layout

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// ErrConsumed reports that a node was measured or drawn a second time.
var ErrConsumed = errors.New("node already consumed")

var logger = log.New(os.Stderr, "layout: ", log.LstdFlags)

// SetLogger replaces the logger used to report protocol misuse. A nil
// logger silences reporting.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// Once guards a single-use phase. The zero value is ready to use.
type Once struct {
	consumed bool
}

// Consume marks the guard used. It returns an error wrapping ErrConsumed if
// the guard had already been consumed.
func (o *Once) Consume(phase string) error {
	if o.consumed {
		return fmt.Errorf("%s: %w", phase, ErrConsumed)
	}
	o.consumed = true
	return nil
}

// Take is Consume for callers inside a redraw loop: reuse is logged and
// reported as false instead of returned.
func (o *Once) Take(phase string) bool {
	if err := o.Consume(phase); err != nil {
		logger.Printf("%v", err)
		return false
	}
	return true
}

// Consumed reports whether the guard has been used.
func (o *Once) Consumed() bool {
	return o.consumed
}
