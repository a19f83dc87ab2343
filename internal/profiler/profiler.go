// Package profiler captures pprof profiles around a single bench run.
package profiler

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// ProfileType represents different profile types
type ProfileType string

const (
	CPUProfile    ProfileType = "cpu"
	HeapProfile   ProfileType = "heap"
	AllocsProfile ProfileType = "allocs"
)

// Session records a CPU profile from Start until Stop, then snapshots the
// heap and allocs profiles. All files share one timestamp.
type Session struct {
	outputDir string
	timestamp string
	logger    log.Logger
	cpuFile   *os.File
}

// Start creates outputDir if needed and begins CPU profiling.
func Start(outputDir string, logger log.Logger) (*Session, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create output dir")
	}

	s := &Session{
		outputDir: outputDir,
		timestamp: time.Now().Format("20060102-150405"),
		logger:    logger,
	}

	file, err := os.Create(s.Filename(CPUProfile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create CPU profile")
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "failed to start CPU profile")
	}
	s.cpuFile = file
	return s, nil
}

// Stop ends CPU profiling and writes the heap and allocs profiles.
func (s *Session) Stop() error {
	pprof.StopCPUProfile()
	if err := s.cpuFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close CPU profile file")
	}
	level.Info(s.logger).Log("msg", "saved profile", "type", CPUProfile, "file", s.Filename(CPUProfile))

	for _, pt := range []ProfileType{HeapProfile, AllocsProfile} {
		if err := s.writeProfile(pt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) writeProfile(pt ProfileType) error {
	p := pprof.Lookup(string(pt))
	if p == nil {
		return errors.Errorf("unknown profile %q", pt)
	}

	filename := s.Filename(pt)
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s profile", pt)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			level.Warn(s.logger).Log("msg", "failed to close profile file", "type", pt, "err", closeErr)
		}
	}()

	if err := p.WriteTo(file, 0); err != nil {
		return errors.Wrapf(err, "failed to write %s profile", pt)
	}
	level.Info(s.logger).Log("msg", "saved profile", "type", pt, "file", filename)
	return nil
}

// Filename returns the path a profile of type pt is written to.
func (s *Session) Filename(pt ProfileType) string {
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.prof", pt, s.timestamp))
}
