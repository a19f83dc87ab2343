// Package gccontrol switches the garbage collector between the modes a bench
// run can be measured under and restores the process setting afterwards.
package gccontrol

import (
	"runtime"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Mode selects how the collector behaves while a measured function runs.
type Mode string

const (
	ModeDefault  Mode = "default"
	ModeTuned    Mode = "tuned"
	ModeDisabled Mode = "disabled"
)

// Modes lists every accepted Mode, in the order help text shows them.
var Modes = []string{string(ModeDefault), string(ModeTuned), string(ModeDisabled)}

// TunedPercent is the GOGC value used in ModeTuned: fewer, larger collections.
const TunedPercent = 500

// Controller remembers the GC percent in effect when it was created and puts
// it back when the last caller re-enables collection.
type Controller struct {
	originalPercent int
	disabledCount   atomic.Int32 // number of outstanding DisableGC calls
	logger          log.Logger
}

// New creates a Controller. A nil logger discards log lines.
func New(logger log.Logger) *Controller {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	// SetGCPercent is the only way to read the current value.
	percent := debug.SetGCPercent(100)
	debug.SetGCPercent(percent)
	return &Controller{originalPercent: percent, logger: logger}
}

// OriginalPercent returns the GC percent the controller restores.
func (c *Controller) OriginalPercent() int { return c.originalPercent }

// DisableGC increments the disable counter and turns GC off on the first call.
func (c *Controller) DisableGC() {
	if c.disabledCount.Add(1) == 1 {
		debug.SetGCPercent(-1)
	}
}

// EnableGC decrements the disable counter and re-enables GC once it hits zero.
func (c *Controller) EnableGC() {
	if c.disabledCount.Add(-1) == 0 {
		debug.SetGCPercent(c.originalPercent)
	}
}

// DisableGCDuring runs f with GC disabled.
func (c *Controller) DisableGCDuring(f func()) {
	c.DisableGC()
	defer c.EnableGC()
	f()
}

// ForceGC runs a collection now, even while collection is disabled.
func (c *Controller) ForceGC() {
	wasDisabled := c.disabledCount.Load() > 0
	if wasDisabled {
		debug.SetGCPercent(c.originalPercent)
	}

	start := time.Now()
	runtime.GC()
	level.Debug(c.logger).Log("msg", "forced GC", "duration", time.Since(start))

	if wasDisabled {
		debug.SetGCPercent(-1)
	}
}

// Run executes f under mode. After a disabled run the garbage that piled up
// is collected before Run returns.
func (c *Controller) Run(mode Mode, f func()) error {
	switch mode {
	case ModeDefault, "":
		f()
	case ModeTuned:
		debug.SetGCPercent(TunedPercent)
		defer debug.SetGCPercent(c.originalPercent)
		f()
	case ModeDisabled:
		c.DisableGCDuring(f)
		c.ForceGC()
	default:
		return errors.Errorf("unknown GC mode %q", mode)
	}
	level.Debug(c.logger).Log("msg", "measured run finished", "gc_mode", mode)
	return nil
}
