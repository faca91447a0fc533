package command

import (
	"fmt"

	"github.com/hasbyte1/go-p4ssw0rd/password"
)

// InfoCommand prints the parameters embedded in an encoded hash.
type InfoCommand struct {
	*BaseCommand
}

func (c *InfoCommand) Synopsis() string {
	return "Show the version and cost of a hash"
}

func (c *InfoCommand) Help() string {
	return helpText(appName+" info HASH",
		"Parses HASH without verifying it and prints its bcrypt version and "+
			"cost. If the configured cost differs, a rehash hint is printed.",
		nil)
}

func (c *InfoCommand) Run(args []string) int {
	fs := c.newFlagSet("info")
	if err := fs.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return exitUsage
	}

	args = fs.Args()
	if len(args) != 1 {
		c.UI.Error(fmt.Sprintf("Incorrect arguments (expected 1, got %d)", len(args)))
		return exitUsage
	}

	info, err := password.Info(args[0])
	if err != nil {
		c.UI.Error(err.Error())
		return exitFailure
	}

	c.UI.Output(fmt.Sprintf("%-8s %s", "Version", info.Version))
	c.UI.Output(fmt.Sprintf("%-8s %d", "Cost", info.Cost))
	if info.Cost != c.Config.Cost {
		c.UI.Warn(fmt.Sprintf("Hash cost %d differs from configured cost %d; rehash on next login.",
			info.Cost, c.Config.Cost))
	}
	return exitSuccess
}
