package input_test

import (
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"arraypointer/pkg/input"
)

func TestScanner(t *testing.T) {
	s := input.NewScanner(strings.NewReader("  1.5\t2\n\n-3  "))

	var got []string
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, tok)
	}
	require.Equal(t, []string{"1.5", "2", "-3"}, got)

	_, err := s.Next()
	require.Equal(t, io.EOF, err, "exhausted scanners keep returning io.EOF")
}

func TestFromStrings(t *testing.T) {
	src := input.FromStrings("a", "b")

	tok, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, "a", tok)

	tok, err = src.Next()
	require.NoError(t, err)
	require.Equal(t, "b", tok)

	_, err = src.Next()
	require.Equal(t, io.EOF, err)
}

func TestCollect(t *testing.T) {
	toks, err := input.Collect(input.NewScanner(strings.NewReader("-5 -2\n-9")), 0)
	require.NoError(t, err)
	require.Equal(t, []string{"-5", "-2", "-9"}, toks)

	toks, err = input.Collect(input.NewScanner(strings.NewReader("")), 0)
	require.NoError(t, err)
	require.Empty(t, toks)

	toks, err = input.Collect(input.FromStrings("1", "2", "3"), 2)
	require.Error(t, err)
	require.Equal(t, []string{"1", "2"}, toks)

	toks, err = input.Collect(input.FromStrings("1", "2"), 2)
	require.NoError(t, err)
	require.Len(t, toks, 2)
}

func TestParse(t *testing.T) {
	f, err := input.Parse[float64]("2.25")
	require.NoError(t, err)
	require.Equal(t, 2.25, f)

	f32, err := input.Parse[float32]("0.5")
	require.NoError(t, err)
	require.Equal(t, float32(0.5), f32)

	n, err := input.Parse[int]("-42")
	require.NoError(t, err)
	require.Equal(t, -42, n)

	u, err := input.Parse[uint16]("65535")
	require.NoError(t, err)
	require.Equal(t, uint16(math.MaxUint16), u)

	inf, err := input.Parse[float64]("-Inf")
	require.NoError(t, err)
	require.True(t, math.IsInf(inf, -1))
}

func TestParse_Errors(t *testing.T) {
	for name, parse := range map[string]func() error{
		"int8 overflow":  func() error { _, err := input.Parse[int8]("128"); return err },
		"uint negative":  func() error { _, err := input.Parse[uint]("-1"); return err },
		"int from float": func() error { _, err := input.Parse[int]("1.5"); return err },
		"garbage":        func() error { _, err := input.Parse[float64]("abc"); return err },
		"nan":            func() error { _, err := input.Parse[float64]("NaN"); return err },
		"nan float32":    func() error { _, err := input.Parse[float32]("nan"); return err },
	} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, parse())
		})
	}
}

func TestPrompt(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, input.Prompt(&sb, 5))
	require.Equal(t, "enter 5 values: ", sb.String())
}
