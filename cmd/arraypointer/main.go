package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"arraypointer/internal/logging"
	"arraypointer/pkg/config"
)

// env is shared by every subcommand: resolved configuration, the logger and
// the process streams.
type env struct {
	configFile string
	logLevel   string
	logFormat  string
	precision  int

	precisionSet bool

	cfg    config.Config
	logger log.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}

	app := kingpin.New("arraypointer", "Print, fill and reduce caller-owned buffers through bounded views.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.HelpFlag.Short('h')

	app.Flag("config.file", "YAML configuration file.").StringVar(&e.configFile)
	app.Flag("log.level", "Only log messages with the given severity or above (debug, info, warn, error).").StringVar(&e.logLevel)
	app.Flag("log.format", "Output format of log messages (logfmt, json).").StringVar(&e.logFormat)
	app.Flag("precision", "Digits printed after the decimal point for floats.").IsSetByUser(&e.precisionSet).IntVar(&e.precision)
	app.PreAction(e.setup)

	registerCommands(app, e)

	if _, err := app.Parse(args); err != nil {
		if e.logger != nil {
			level.Error(e.logger).Log("msg", "command failed", "err", err)
		} else {
			fmt.Fprintf(stderr, "arraypointer: %v\n", err)
		}
		return 1
	}
	return 0
}

// setup resolves the configuration file, lets flags override it and builds
// the logger.
func (e *env) setup(*kingpin.ParseContext) error {
	cfg, err := config.Load(e.configFile)
	if err != nil {
		return err
	}
	if e.logLevel != "" {
		cfg.Log.Level = e.logLevel
	}
	if e.logFormat != "" {
		cfg.Log.Format = e.logFormat
	}
	if e.precisionSet {
		cfg.Precision = e.precision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(e.stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}
	e.cfg, e.logger = cfg, logger
	level.Debug(e.logger).Log("msg", "configuration loaded", "file", e.configFile, "precision", cfg.Precision)
	return nil
}
