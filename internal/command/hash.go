package command

import (
	"flag"
	"fmt"
	"time"

	"github.com/hasbyte1/go-p4ssw0rd/password"
)

// HashCommand prints the encoded hash of a password.
type HashCommand struct {
	*BaseCommand

	flagCost int
}

func (c *HashCommand) Synopsis() string {
	return "Hash a password"
}

func (c *HashCommand) Help() string {
	return helpText(appName+" hash [options] [PASSWORD]",
		"Pre-hashes PASSWORD with SHA-256 and encodes it with bcrypt under a "+
			"fresh random salt. The 60-character result is printed to stdout.\n\n"+
			"When PASSWORD is omitted it is read from the terminal without echo.",
		c.flags())
}

func (c *HashCommand) flags() *flag.FlagSet {
	fs := c.newFlagSet("hash")
	fs.IntVar(&c.flagCost, "cost", c.Config.Cost, "bcrypt work factor, 4 to 31.")
	return fs
}

func (c *HashCommand) Run(args []string) int {
	fs := c.flags()
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return exitUsage
	}

	args = fs.Args()
	if len(args) > 1 {
		c.UI.Error(fmt.Sprintf("Too many arguments (expected 0 or 1, got %d)", len(args)))
		return exitUsage
	}

	h, err := password.New(password.WithCost(c.flagCost))
	if err != nil {
		c.UI.Error(err.Error())
		return exitUsage
	}

	pw, err := c.readPassword(args)
	if err != nil {
		c.UI.Error(err.Error())
		return exitFailure
	}

	start := time.Now()
	hash, err := h.Hash(pw)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error hashing password: %s", err))
		return exitFailure
	}
	c.Logger.Debug("hashed password", "cost", h.Cost(), "elapsed", time.Since(start))

	c.UI.Output(hash)
	return exitSuccess
}
