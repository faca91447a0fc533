package password

import (
	"context"
	"fmt"
	"time"
)

const calibrationProbe = "calibration-probe"

// Calibrate returns the smallest cost in [MinCost, maxCost] for which a
// single [Hasher.Hash] takes at least target on this machine.  If no cost
// reaches target, maxCost is returned.
//
// bcrypt time doubles with every cost step, so the loop ends after roughly
// twice target.  ctx is checked between rounds.
func Calibrate(ctx context.Context, target time.Duration, maxCost int) (int, error) {
	if err := validateCost(maxCost); err != nil {
		return 0, err
	}
	if target <= 0 {
		return 0, fmt.Errorf("%w: target %s must be positive", ErrInvalidParameter, target)
	}

	for cost := MinCost; cost <= maxCost; cost++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		h := &Hasher{cost: cost}
		start := time.Now()
		if _, err := h.Hash(calibrationProbe); err != nil {
			return 0, err
		}
		if time.Since(start) >= target {
			return cost, nil
		}
	}
	return maxCost, nil
}
