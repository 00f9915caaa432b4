package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"
)

const version = "v0.1.0"

type cliConfig struct {
	name      string
	tailLines int
	interval  time.Duration
	plain     bool
	copyPath  bool
	debug     bool
	noColor   bool
	argv      []string
}

func parseArgs(args []string) (*cliConfig, error) {
	app := kingpin.New("runbox", "Run a command behind a live tail box and keep its full output.")
	app.Version(version)
	app.DefaultEnvars()

	c := &cliConfig{}
	app.Flag("name", "Label shown in the box title (defaults to the executable).").StringVar(&c.name)
	app.Flag("tail-lines", "Number of output lines kept visible in the box.").Default("4").IntVar(&c.tailLines)
	app.Flag("interval", "Redraw interval of the live indicator.").Default("200ms").DurationVar(&c.interval)
	app.Flag("plain", "Disable the live box and echo lines as they arrive.").BoolVar(&c.plain)
	app.Flag("copy-path", "Copy the dump file path to the clipboard (OSC52).").BoolVar(&c.copyPath)
	app.Flag("debug", "Enable debug logging to stderr.").BoolVar(&c.debug)
	app.Flag("no-color", "Disable log color.").BoolVar(&c.noColor)
	app.Arg("command", "Command to run, with its arguments.").Required().StringsVar(&c.argv)

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid command configuration: %w", err)
	}
	return c, nil
}

// getLogger returns the application logger. Logging is off by default so it
// cannot corrupt the live region; --debug routes it to stderr.
func getLogger(c *cliConfig) *logrus.Entry {
	l := logrus.New()
	if !c.debug {
		l.SetOutput(io.Discard)
		return logrus.NewEntry(l)
	}

	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		ForceColors:   !c.noColor,
		DisableColors: c.noColor,
	})
	return logrus.NewEntry(l).WithField("version", version)
}

func main() {
	c, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(2)
	}

	name := c.name
	if name == "" {
		name = c.argv[0]
	}

	outcome, err := Run(RunSpec{
		Argv:      c.argv,
		Name:      name,
		TailLines: c.tailLines,
		Tick:      c.interval,
		Plain:     c.plain,
		Logger:    getLogger(c),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if c.copyPath {
		copyToClipboard(outcome.LogPath)
	}

	// Mirror the child's exit status so runbox is transparent to scripts.
	if !outcome.Result.Succeeded {
		if outcome.Result.Coded && outcome.Result.Code > 0 {
			os.Exit(outcome.Result.Code)
		}
		os.Exit(1)
	}
}
