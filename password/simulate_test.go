package password_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hasbyte1/go-p4ssw0rd/password"
)

// fastest returns the minimum of n timings of fn.  The minimum filters out
// scheduler noise better than a single sample.
func fastest(n int, fn func()) time.Duration {
	best := time.Duration(1<<63 - 1)
	for i := 0; i < n; i++ {
		start := time.Now()
		fn()
		if d := time.Since(start); d < best {
			best = d
		}
	}
	return best
}

func TestSimulate_InvalidCost(t *testing.T) {
	for _, cost := range []int{-5, 2, 3, 32} {
		if err := password.Simulate(password.WithCost(cost)); !errors.Is(err, password.ErrInvalidParameter) {
			t.Errorf("cost %d: expected ErrInvalidParameter, got %v", cost, err)
		}
	}
}

func TestSimulate_Default(t *testing.T) {
	if testing.Short() {
		t.Skip("runs bcrypt at the default cost")
	}
	if err := password.Simulate(); err != nil {
		t.Fatalf("Simulate: %v", err)
	}
}

func TestSimulate_MatchesCheckTiming(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test runs bcrypt at cost 12")
	}

	hash, err := password.Hash("admin123", password.WithCost(12))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	actual := fastest(3, func() { password.Check("admin123", hash) })
	fake := fastest(3, func() { _ = password.Simulate(password.WithCost(12)) })

	diff := actual - fake
	if diff < 0 {
		diff = -diff
	}
	if diff >= 100*time.Millisecond {
		t.Errorf("check took %s, simulate took %s: difference %s exceeds 100ms", actual, fake, diff)
	}
}

func TestSimulate_RespectsCost(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test runs bcrypt at cost 12")
	}

	fast := fastest(1, func() { _ = password.Simulate(password.WithCost(8)) })
	slow := fastest(1, func() { _ = password.Simulate(password.WithCost(12)) })

	if fast >= slow {
		t.Errorf("simulate(8) took %s, not less than simulate(12) at %s", fast, slow)
	}
}

func TestHasher_Simulate(t *testing.T) {
	h := newTestHasher(t)
	if err := h.Simulate(); err != nil {
		t.Fatalf("Simulate: %v", err)
	}
}

func TestCheckOrSimulate_MalformedHashMatchesCheckTiming(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test runs bcrypt at cost 12")
	}

	h, err := password.New(password.WithCost(12))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	hash, err := h.Hash("admin123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	wrong := fastest(3, func() { h.CheckOrSimulate("wrong", hash, true) })
	corrupt := fastest(3, func() { h.CheckOrSimulate("wrong", "$2a$12$corrupt", true) })

	diff := wrong - corrupt
	if diff < 0 {
		diff = -diff
	}
	if diff >= 100*time.Millisecond {
		t.Errorf("wrong password took %s, corrupt hash took %s: difference %s exceeds 100ms", wrong, corrupt, diff)
	}
}
