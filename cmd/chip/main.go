// Package main is the entry point for the chip text viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/chip/internal/app"
	"github.com/dshills/chip/internal/config"
	"github.com/dshills/chip/internal/input/keymap"
	"github.com/dshills/chip/internal/terminal"
)

// errUsage is returned by parseArgs for a bad command line.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run())
}

func run() int {
	path, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	// Config problems are reported before the terminal changes mode.
	cfg := config.New()
	if err := cfg.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "chip: %v\n", err)
		return 1
	}

	km, err := loadKeymap(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chip: %v\n", err)
		return 1
	}

	logger, closeLog, err := app.OpenLogger(cfg.Logging())
	if err != nil {
		fmt.Fprintf(os.Stderr, "chip: %v\n", err)
		return 1
	}
	defer closeLog()

	editorCfg, uiCfg := cfg.Editor(), cfg.UI()
	opts := app.Options{
		TabSize:        editorCfg.TabSize,
		Welcome:        editorCfg.Welcome,
		HelpMessage:    uiCfg.HelpMessage,
		MessageTimeout: uiCfg.MessageTimeout,
		Keymap:         km,
		Logger:         logger,
	}
	if file := cfg.File(); file != "" {
		logger.Info("config file %s", file)
	}
	for setting, problem := range cfg.ConfigErrors() {
		logger.Warn("config %s: %v", setting, problem)
	}

	session := terminal.NewSession(os.Stdin, os.Stdout)
	if err := session.Enter(); err != nil {
		fmt.Fprintf(os.Stderr, "chip: %v\n", err)
		return 1
	}
	// Restores the terminal if anything below panics.
	defer session.Exit()

	err = edit(session, opts, path)
	if errors.Is(err, app.ErrQuit) {
		if err := session.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "chip: %v\n", err)
			return 1
		}
		logger.Info("quit")
		return 0
	}

	if cerr := session.Close(); cerr != nil {
		logger.Error("close terminal: %v", cerr)
	}
	logger.Error("fatal: %v", err)
	fmt.Fprintf(os.Stderr, "chip: %v\n", err)
	return 1
}

// edit runs the editor on session until it quits or fails.
func edit(session *terminal.Session, opts app.Options, path string) error {
	ed, err := app.New(session, opts)
	if err != nil {
		return err
	}
	if path != "" {
		if err := ed.Open(path); err != nil {
			return err
		}
	}
	return ed.Run()
}

// loadKeymap returns the default keymap with the config's [keys]
// bindings layered on top.
func loadKeymap(cfg *config.Config) (*keymap.Keymap, error) {
	km := keymap.Default()
	for keys, action := range cfg.Keys() {
		if err := km.Add(keys, action); err != nil {
			return nil, fmt.Errorf("config keys: %w", err)
		}
	}
	return km, nil
}

// parseArgs returns the file to open, or "" for an empty buffer.
// It writes usage to stderr for -h and for more than one argument.
func parseArgs(args []string, stderr io.Writer) (string, error) {
	fs := flag.NewFlagSet("chip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "chip - a terminal text viewer\n\n")
		fmt.Fprintf(stderr, "Usage: chip [file]\n\n")
		fmt.Fprintf(stderr, "Keys:\n")
		for _, b := range keymap.Default().Bindings() {
			fmt.Fprintf(stderr, "  %-10s %s\n", b.Keys, b.Description)
		}
	}

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	switch fs.NArg() {
	case 0:
		return "", nil
	case 1:
		return fs.Arg(0), nil
	default:
		fs.Usage()
		return "", errUsage
	}
}
