package besteffort

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	t.Parallel()

	if rep := Run(context.Background(), "ok", 0, func(context.Context) error { return nil }); !rep.OK || rep.Error != "" {
		t.Fatalf("success report = %+v", rep)
	}

	rep := Run(context.Background(), "fail", 0, func(context.Context) error { return errors.New("smtp down") })
	if rep.OK || rep.Error != "smtp down" {
		t.Fatalf("failure report = %+v", rep)
	}

	rep = Run(context.Background(), "boom", 0, func(context.Context) error { panic("nil map") })
	if rep.OK || rep.Error == "" {
		t.Fatalf("panic report = %+v", rep)
	}
}

func TestRun_AppliesTimeout(t *testing.T) {
	t.Parallel()

	rep := Run(context.Background(), "slow", 10*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if rep.OK || rep.Error != context.DeadlineExceeded.Error() {
		t.Fatalf("timeout report = %+v", rep)
	}
}
