// Package command implements the p4ssw0rd command line interface.
package command

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/kr/text"
	"github.com/mitchellh/cli"

	"github.com/hasbyte1/go-p4ssw0rd/internal/config"
)

const (
	// EnvConfigPath names the config file to load.
	EnvConfigPath = `P4SSW0RD_CONFIG`
	// EnvNoColor disables colored output when set to any value.
	EnvNoColor = `P4SSW0RD_CLI_NO_COLOR`

	appName       = "p4ssw0rd"
	maxLineLength = 78
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// Version is reported by -version.
var Version = "0.1.0"

var (
	uiColorMatch    = cli.UiColor{Code: int(color.FgHiGreen), Bold: true}
	uiColorMismatch = cli.UiColor{Code: int(color.FgHiRed), Bold: true}
)

// RunOptions overrides the process streams and config location.
type RunOptions struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	ConfigPath string
}

// Run executes the CLI with the process streams.
func Run(args []string) int {
	return RunCustom(args, nil)
}

// RunCustom executes the CLI with the given options.
func RunCustom(args []string, runOpts *RunOptions) int {
	if runOpts == nil {
		runOpts = &RunOptions{}
	}
	if runOpts.Stdin == nil {
		runOpts.Stdin = os.Stdin
	}
	if runOpts.Stdout == nil {
		runOpts.Stdout = os.Stdout
	}
	if runOpts.Stderr == nil {
		runOpts.Stderr = os.Stderr
	}
	if runOpts.ConfigPath == "" {
		runOpts.ConfigPath = os.Getenv(EnvConfigPath)
	}

	ui := newUI(runOpts.Stdin, runOpts.Stdout, runOpts.Stderr)

	cfg, err := config.Load(runOpts.ConfigPath)
	if err != nil {
		ui.Error(err.Error())
		return exitFailure
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   appName,
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: runOpts.Stderr,
	})

	c := &cli.CLI{
		Name:        appName,
		Version:     Version,
		Args:        args,
		Commands:    Commands(&BaseCommand{UI: ui, Logger: logger, Config: cfg}),
		HelpFunc:    cli.BasicHelpFunc(appName),
		HelpWriter:  runOpts.Stdout,
		ErrorWriter: runOpts.Stderr,
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("Error executing CLI: %s", err))
		return exitFailure
	}
	return exitCode
}

// Commands returns the command table, each command sharing base.
func Commands(base *BaseCommand) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"hash": func() (cli.Command, error) {
			return &HashCommand{BaseCommand: base}, nil
		},
		"check": func() (cli.Command, error) {
			return &CheckCommand{BaseCommand: base}, nil
		},
		"simulate": func() (cli.Command, error) {
			return &SimulateCommand{BaseCommand: base}, nil
		},
		"info": func() (cli.Command, error) {
			return &InfoCommand{BaseCommand: base}, nil
		},
		"calibrate": func() (cli.Command, error) {
			return &CalibrateCommand{BaseCommand: base}, nil
		},
	}
}

func newUI(in io.Reader, out, errOut io.Writer) cli.Ui {
	basic := &cli.BasicUi{Reader: in, Writer: out, ErrorWriter: errOut}
	if os.Getenv(EnvNoColor) != "" || color.NoColor {
		return basic
	}
	return &cli.ColoredUi{
		Ui:          basic,
		OutputColor: cli.UiColorNone,
		InfoColor:   uiColorMatch,
		ErrorColor:  uiColorMismatch,
		WarnColor:   cli.UiColorYellow,
	}
}

// BaseCommand carries what every command needs.
type BaseCommand struct {
	UI     cli.Ui
	Logger hclog.Logger
	Config *config.Config
}

func (c *BaseCommand) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// readPassword returns args[0], or prompts without echo when args is empty.
func (c *BaseCommand) readPassword(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	pw, err := c.UI.AskSecret("Password:")
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

func wrapAtLength(s string) string {
	return text.Wrap(s, maxLineLength)
}

// helpText assembles usage, a wrapped description and flag defaults.
func helpText(usage, description string, fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("Usage: " + usage + "\n\n")
	for _, para := range strings.Split(description, "\n\n") {
		b.WriteString(text.Indent(wrapAtLength(para), "  "))
		b.WriteString("\n\n")
	}
	if fs != nil {
		var flags bytes.Buffer
		fs.SetOutput(&flags)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		if flags.Len() > 0 {
			b.WriteString("Command Options:\n\n")
			b.WriteString(flags.String())
		}
	}
	return strings.TrimSpace(b.String())
}
