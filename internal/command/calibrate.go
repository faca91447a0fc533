package command

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/hasbyte1/go-p4ssw0rd/password"
)

// CalibrateCommand finds the cost that reaches a target hashing time.
type CalibrateCommand struct {
	*BaseCommand

	flagTarget  time.Duration
	flagMaxCost int
}

func (c *CalibrateCommand) Synopsis() string {
	return "Pick a cost for a target hashing time"
}

func (c *CalibrateCommand) Help() string {
	return helpText(appName+" calibrate [options]",
		"Hashes a probe value at increasing costs and prints the first cost whose "+
			"hashing time reaches the target on this machine. The search stops at "+
			"-max-cost.",
		c.flags())
}

func (c *CalibrateCommand) flags() *flag.FlagSet {
	fs := c.newFlagSet("calibrate")
	fs.DurationVar(&c.flagTarget, "target", c.Config.Calibrate.Target, "Hashing time to reach.")
	fs.IntVar(&c.flagMaxCost, "max-cost", c.Config.Calibrate.MaxCost, "Highest cost to try.")
	return fs
}

func (c *CalibrateCommand) Run(args []string) int {
	fs := c.flags()
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return exitUsage
	}
	if n := len(fs.Args()); n > 0 {
		c.UI.Error(fmt.Sprintf("Too many arguments (expected 0, got %d)", n))
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	cost, err := password.Calibrate(ctx, c.flagTarget, c.flagMaxCost)
	switch {
	case errors.Is(err, password.ErrInvalidParameter):
		c.UI.Error(err.Error())
		return exitUsage
	case err != nil:
		c.UI.Error(fmt.Sprintf("Error calibrating: %s", err))
		return exitFailure
	}
	c.Logger.Info("calibrated", "cost", cost, "target", c.flagTarget, "elapsed", time.Since(start))

	c.UI.Output(strconv.Itoa(cost))
	return exitSuccess
}
