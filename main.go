// Package main implements the pengo tool: it inspects and verifies the
// Pengo machine driver, exports its graphics and waveforms and runs a
// tile viewer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"pengo-emu/config"
	"pengo-emu/pengo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, env *environment, args []string) error
}

var commands = []command{
	{"info", "print the driver tables", runInfo},
	{"verify", "check table consistency and optionally a rom set", runVerify},
	{"tiles", "export a graphics bank as an image", runTiles},
	{"waves", "export the waveforms as WAV files", runWaves},
	{"play", "play a waveform", runPlay},
	{"view", "open the tile and palette viewer", runView},
	{"probe", "exercise the memory map on a bare board", runProbe},
}

// environment is shared by every command.
type environment struct {
	logger *log.Logger
	opts   config.Options
}

func main() {
	fs := flag.NewFlagSet("pengo", flag.ExitOnError)
	configFile := fs.String("c", "", "JSON config file")
	debug := fs.Bool("debug", false, "enable debug logging")
	quiet := fs.Bool("q", false, "only log errors")
	fs.Usage = func() { usage(fs) }
	_ = fs.Parse(os.Args[1:])

	var opts config.Options
	if *configFile != "" {
		var err error
		opts, err = config.Load(*configFile)
		if err != nil {
			config.CreateLogger(false, false).Fatal(err.Error())
		}
	}
	opts.Debug = opts.Debug || *debug
	opts.Quiet = opts.Quiet || *quiet
	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	args := fs.Args()
	if len(args) == 0 {
		usage(fs)
		os.Exit(1)
	}

	cmd, ok := findCommand(args[0])
	if !ok {
		usage(fs)
		os.Exit(1)
	}

	logger.Info(pengo.Name, log.String("version", buildinfo.Version(version, commit, date)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := &environment{logger: logger, opts: opts}
	if err := cmd.run(ctx, env, args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Command failed", log.String("command", cmd.name), log.Err(err))
		stop()
		os.Exit(1)
	}
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "usage: pengo [options] <command> [arguments]\n\noptions:\n")
	fs.PrintDefaults()
	fmt.Fprintf(out, "\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-8s %s\n", c.name, c.usage)
	}
}
