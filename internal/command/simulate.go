package command

import (
	"flag"
	"fmt"
	"time"

	"github.com/hasbyte1/go-p4ssw0rd/password"
)

// SimulateCommand runs a simulated check and reports how long it took.
type SimulateCommand struct {
	*BaseCommand

	flagCost int
}

func (c *SimulateCommand) Synopsis() string {
	return "Time a simulated password check"
}

func (c *SimulateCommand) Help() string {
	return helpText(appName+" simulate [options]",
		"Performs the work of a failed password check at the given cost against "+
			"a fabricated hash, then prints the elapsed time. Servers call the "+
			"equivalent library function for unknown accounts so that login "+
			"latency does not reveal whether an account exists.",
		c.flags())
}

func (c *SimulateCommand) flags() *flag.FlagSet {
	fs := c.newFlagSet("simulate")
	fs.IntVar(&c.flagCost, "cost", c.Config.Cost, "bcrypt work factor, 4 to 31.")
	return fs
}

func (c *SimulateCommand) Run(args []string) int {
	fs := c.flags()
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return exitUsage
	}
	if n := len(fs.Args()); n > 0 {
		c.UI.Error(fmt.Sprintf("Too many arguments (expected 0, got %d)", n))
		return exitUsage
	}

	h, err := password.New(password.WithCost(c.flagCost))
	if err != nil {
		c.UI.Error(err.Error())
		return exitUsage
	}

	start := time.Now()
	if err := h.Simulate(); err != nil {
		c.UI.Error(fmt.Sprintf("Error simulating check: %s", err))
		return exitFailure
	}
	elapsed := time.Since(start)
	c.Logger.Debug("simulated check", "cost", h.Cost(), "elapsed", elapsed)

	c.UI.Output(fmt.Sprintf("Simulated check at cost %d in %s", h.Cost(), elapsed.Round(time.Millisecond)))
	return exitSuccess
}
