package password_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hasbyte1/go-p4ssw0rd/password"
)

func TestCalibrate_TinyTargetReturnsMinCost(t *testing.T) {
	cost, err := password.Calibrate(context.Background(), time.Nanosecond, 10)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	if cost != password.MinCost {
		t.Errorf("cost = %d, want %d", cost, password.MinCost)
	}
}

func TestCalibrate_UnreachableTargetReturnsMaxCost(t *testing.T) {
	cost, err := password.Calibrate(context.Background(), time.Hour, 5)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	if cost != 5 {
		t.Errorf("cost = %d, want 5", cost)
	}
}

func TestCalibrate_InvalidArguments(t *testing.T) {
	ctx := context.Background()
	if _, err := password.Calibrate(ctx, time.Second, 40); !errors.Is(err, password.ErrInvalidParameter) {
		t.Errorf("maxCost 40: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := password.Calibrate(ctx, 0, 10); !errors.Is(err, password.ErrInvalidParameter) {
		t.Errorf("zero target: expected ErrInvalidParameter, got %v", err)
	}
}

func TestCalibrate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := password.Calibrate(ctx, time.Hour, 10); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
