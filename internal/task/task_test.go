package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRun_SucceedsAfterRetries(t *testing.T) {
	policy := RetryPolicy{Retries: 3, Delay: time.Millisecond, Timeout: time.Second}

	attempts := 0
	out, err := run(context.Background(), policy, zerolog.Nop(), func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("transient")
		}
		return "done", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != "done" {
		t.Errorf("got %q, want done", out)
	}
	if attempts != 3 {
		t.Errorf("got %d attempts, want 3", attempts)
	}
}

func TestRun_SurfacesLastErrorUnchanged(t *testing.T) {
	policy := RetryPolicy{Retries: 2, Delay: time.Millisecond, Timeout: time.Second}

	sentinel := errors.New("permanent failure")
	attempts := 0
	_, err := run(context.Background(), policy, zerolog.Nop(), func(ctx context.Context) (int, error) {
		attempts++
		return 0, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("got %v, want the sentinel error", err)
	}
	if attempts != 3 {
		t.Errorf("got %d attempts, want 3 (first try plus two retries)", attempts)
	}
}

func TestRun_TimeoutCutsRetries(t *testing.T) {
	policy := RetryPolicy{Retries: 10, Delay: time.Second, Timeout: 20 * time.Millisecond}

	_, err := run(context.Background(), policy, zerolog.Nop(), func(ctx context.Context) (int, error) {
		return 0, errors.New("always failing")
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want context.DeadlineExceeded", err)
	}
}

func TestRetryPolicy_OrDefault(t *testing.T) {
	def := RetryPolicy{}.orDefault()
	if def.Retries != 3 || def.Delay != 10*time.Second || def.Timeout != time.Hour {
		t.Errorf("zero policy should become the platform defaults, got %+v", def)
	}

	custom := RetryPolicy{Retries: 1, Delay: time.Millisecond}.orDefault()
	if custom.Retries != 1 || custom.Delay != time.Millisecond {
		t.Errorf("explicit fields must be kept, got %+v", custom)
	}
	if custom.Timeout != time.Hour {
		t.Errorf("missing timeout should default to an hour, got %v", custom.Timeout)
	}
}
