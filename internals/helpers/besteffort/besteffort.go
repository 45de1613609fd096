// Package besteffort runs optional side effects whose failure must not fail the caller.
package besteffort

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Report is the captured outcome of one side effect.
type Report struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Run executes fn, converting an error or a panic into a Report. A positive timeout
// bounds fn with its own deadline derived from ctx.
func Run(ctx context.Context, label string, timeout time.Duration, fn func(ctx context.Context) error) (rep Report) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] %s panicked: %v", label, r)
			rep = Report{OK: false, Error: fmt.Sprintf("%s: unexpected failure", label)}
		}
	}()

	if err := fn(ctx); err != nil {
		log.Printf("[WARN] %s failed: %v", label, err)
		return Report{OK: false, Error: err.Error()}
	}
	return Report{OK: true}
}
