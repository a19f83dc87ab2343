package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"arraypointer/examples"
	"arraypointer/internal/gccontrol"
	"arraypointer/internal/profiler"
	"arraypointer/pkg/format"
	"arraypointer/pkg/input"
	"arraypointer/pkg/metrics"
	"arraypointer/pkg/view"
)

// maxElements bounds every buffer the CLI allocates from user input.
const maxElements = 1 << 20

func registerCommands(app *kingpin.Application, e *env) {
	p := &printCommand{env: e}
	pc := app.Command("print", "Print integers through a view (defaults to the five element sample array).")
	pc.Flag("twice", "Print the 5 and 7 element sample arrays with one routine.").BoolVar(&p.twice)
	pc.Arg("values", "Integers to print. Put -- before the first negative value.").StringsVar(&p.values)
	pc.Action(p.run)

	f := &fillCommand{env: e}
	fc := app.Command("fill", "Read values from stdin into a fixed-size buffer, then print it.")
	fc.Flag("count", "Number of elements in the buffer.").Short('n').Default("5").IntVar(&f.count)
	fc.Flag("type", "Element type.").Default("float").EnumVar(&f.typ, "int", "float")
	fc.Action(f.run)

	m := &maxCommand{env: e}
	mc := app.Command("max", "Print the maximum of the given numbers, or of the numbers on stdin when none are given.")
	mc.Arg("values", "Numbers to reduce. Put -- before the first negative value.").StringsVar(&m.values)
	mc.Action(m.run)

	app.Command("input-max", "Prompt for five numbers on stdin and print their maximum.").
		Action(func(*kingpin.ParseContext) error {
			_, err := examples.InputAndMax(e.stdin, e.stdout)
			return err
		})

	app.Command("alias", "Show pointer values and a refused int32 to float64 reinterpretation.").
		Action(func(*kingpin.ParseContext) error { return examples.AliasDemo(e.stdout) })

	b := &benchCommand{env: e}
	bc := app.Command("bench", "Time view.Max over a buffer and report latency and heap statistics.")
	bc.Flag("size", "Elements per buffer.").Default("1024").IntVar(&b.size)
	bc.Flag("iterations", "Number of Max calls to time.").Default("100000").IntVar(&b.iterations)
	bc.Flag("profile.dir", "Write CPU, heap and allocs profiles of the run to this directory.").StringVar(&b.profileDir)
	bc.Flag("gc", "GC mode for the timed loop: default, tuned, disabled.").Default(string(gccontrol.ModeDefault)).EnumVar(&b.gcMode, gccontrol.Modes...)
	bc.Action(b.run)
}

// printCommand prints integer arrays, either the samples or the given values.
type printCommand struct {
	*env
	twice  bool
	values []string
}

func (cmd *printCommand) run(*kingpin.ParseContext) error {
	var err error
	switch {
	case len(cmd.values) > 0:
		buf := make([]int64, len(cmd.values))
		if _, err = view.Fill(input.FromStrings(cmd.values...), view.New(buf)); err != nil {
			return errors.Wrap(err, "parsing values")
		}
		err = view.Print(cmd.stdout, view.New(buf), format.Decimal[int64](0), cmd.cfg.Delimiter)
	case cmd.twice:
		err = examples.PrintTwoArrays(cmd.stdout)
	default:
		err = examples.PrintArray(cmd.stdout)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.stdout)
	return err
}

// fillCommand fills a buffer of count elements from stdin.
type fillCommand struct {
	*env
	count int
	typ   string
}

func (cmd *fillCommand) run(*kingpin.ParseContext) error {
	if cmd.count < 0 || cmd.count > maxElements {
		return errors.Errorf("count must be between 0 and %d, got %d", maxElements, cmd.count)
	}
	if cmd.typ == "int" {
		return fillAndPrint[int64](cmd.env, cmd.count)
	}
	return fillAndPrint[float64](cmd.env, cmd.count)
}

// fillAndPrint reads into a fresh buffer and prints what was read. A short
// input is logged with the number of values read and the filled prefix is
// still printed.
func fillAndPrint[T input.Number](e *env, count int) error {
	buf := make([]T, count)
	if err := input.Prompt(e.stdout, count); err != nil {
		return err
	}

	filled, err := view.Fill(input.NewScanner(e.stdin), view.New(buf))
	if err != nil {
		if !errors.Is(err, view.ErrInputExhausted) {
			return err
		}
		level.Warn(e.logger).Log("msg", "input exhausted, printing partial buffer", "filled", filled, "want", count, "err", err)
	}

	v, err := view.Window(buf, filled)
	if err != nil {
		return err
	}
	if err := view.Print(e.stdout, v, format.Decimal[T](e.cfg.Precision), e.cfg.Delimiter); err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout)
	return err
}

// maxCommand reduces its arguments to their maximum.
type maxCommand struct {
	*env
	values []string
}

func (cmd *maxCommand) run(*kingpin.ParseContext) error {
	values := cmd.values
	if len(values) == 0 {
		var err error
		if values, err = input.Collect(input.NewScanner(cmd.stdin), maxElements); err != nil {
			return errors.Wrap(err, "reading values")
		}
	}

	buf := make([]float64, len(values))
	v := view.New(buf)
	if _, err := view.Fill(input.FromStrings(values...), v); err != nil {
		return errors.Wrap(err, "parsing values")
	}

	m, err := view.Max(v)
	if err != nil {
		return errors.Wrap(err, "max")
	}
	_, err = fmt.Fprintf(cmd.stdout, "max: %s\n", format.Decimal[float64](cmd.cfg.Precision)(m))
	return err
}

// benchCommand times repeated Max calls over one buffer.
type benchCommand struct {
	*env
	size       int
	iterations int
	profileDir string
	gcMode     string
}

var sinkMax float64

func (cmd *benchCommand) run(*kingpin.ParseContext) (err error) {
	if cmd.size <= 0 || cmd.iterations <= 0 {
		return errors.Errorf("size and iterations must be positive, got %d and %d", cmd.size, cmd.iterations)
	}
	if cmd.size > maxElements {
		return errors.Errorf("size must not exceed %d, got %d", maxElements, cmd.size)
	}

	if cmd.profileDir != "" {
		session, startErr := profiler.Start(cmd.profileDir, cmd.logger)
		if startErr != nil {
			return startErr
		}
		defer func() {
			if stopErr := session.Stop(); err == nil {
				err = stopErr
			}
		}()
	}

	buf := make([]float64, cmd.size)
	for i := range buf {
		buf[i] = float64(i % 97)
	}
	v := view.New(buf)

	bold := color.New(color.Bold)
	if _, err := bold.Fprintf(cmd.stdout, "Buffer: %s elements, %s, GC mode %s\n",
		humanize.Comma(int64(cmd.size)), humanize.IBytes(uint64(cmd.size)*8), cmd.gcMode); err != nil {
		return err
	}
	metrics.WriteMemStats(cmd.stdout, "Before")

	recorder := metrics.NewLatencyRecorder(cmd.iterations)
	var runErr error
	gc := gccontrol.New(cmd.logger)
	if err := gc.Run(gccontrol.Mode(cmd.gcMode), func() {
		for i := 0; i < cmd.iterations && runErr == nil; i++ {
			start := time.Now()
			sinkMax, runErr = view.Max(v)
			recorder.Record(start)
		}
	}); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	recorder.WriteStats(cmd.stdout, "view.Max")
	metrics.WriteMemStats(cmd.stdout, "After")
	level.Debug(cmd.logger).Log("msg", "bench finished", "iterations", cmd.iterations, "max", sinkMax)
	return nil
}
