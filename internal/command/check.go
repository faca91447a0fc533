package command

import (
	"fmt"
	"time"

	"github.com/hasbyte1/go-p4ssw0rd/password"
)

// CheckCommand verifies a password against an encoded hash.
type CheckCommand struct {
	*BaseCommand
}

func (c *CheckCommand) Synopsis() string {
	return "Verify a password against a hash"
}

func (c *CheckCommand) Help() string {
	return helpText(appName+" check [PASSWORD] HASH",
		"Verifies PASSWORD against HASH. Prints \"match\" and exits 0, or prints "+
			"\"mismatch\" and exits 1. A malformed HASH is reported as a mismatch.\n\n"+
			"When only HASH is given the password is read from the terminal without echo.",
		nil)
}

func (c *CheckCommand) Run(args []string) int {
	fs := c.newFlagSet("check")
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return exitUsage
	}

	args = fs.Args()
	var pwArgs []string
	switch len(args) {
	case 1:
	case 2:
		pwArgs = args[:1]
	default:
		c.UI.Error(fmt.Sprintf("Incorrect arguments (expected 1 or 2, got %d)", len(args)))
		return exitUsage
	}
	hash := args[len(args)-1]

	pw, err := c.readPassword(pwArgs)
	if err != nil {
		c.UI.Error(err.Error())
		return exitFailure
	}

	start := time.Now()
	ok, err := password.Verify(pw, hash)
	if err != nil {
		c.Logger.Debug("stored hash rejected", "error", err)
	}
	c.Logger.Debug("checked password", "match", ok, "elapsed", time.Since(start))

	if !ok {
		c.UI.Error("mismatch")
		return exitFailure
	}
	c.UI.Info("match")
	return exitSuccess
}
