package profiler

import (
	"os"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	dir := t.TempDir()
	s, err := Start(dir, log.NewNopLogger())
	require.NoError(t, err)

	sum := 0
	for i := 0; i < 1_000; i++ {
		sum += i
	}
	require.Equal(t, 499_500, sum)

	require.NoError(t, s.Stop())
	for _, pt := range []ProfileType{CPUProfile, HeapProfile, AllocsProfile} {
		fi, err := os.Stat(s.Filename(pt))
		require.NoError(t, err, "profile %s", pt)
		require.NotZero(t, fi.Size(), "profile %s", pt)
	}
}
