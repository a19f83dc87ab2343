package alias_test

import (
	"encoding/binary"
	"fmt"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"arraypointer/pkg/alias"
	"arraypointer/pkg/view"
)

func TestInspect(t *testing.T) {
	a := int32(10)
	r := alias.Inspect(&a)

	require.Equal(t, uintptr(unsafe.Pointer(&a)), r.Addr)
	require.Equal(t, int32(10), r.Value)
	require.Equal(t, uintptr(4), r.Size)
	require.Nil(t, r.AsFloat64)
	require.ErrorIs(t, r.Err, view.ErrContractViolation)

	require.Equal(t, binary.NativeEndian.AppendUint32(nil, 10), r.Raw)
	r.Raw[0], r.Raw[1], r.Raw[2], r.Raw[3] = 0, 0, 0, 0
	require.Equal(t, int32(0), a, "the byte view shares the variable's storage")
}

func TestDescribe(t *testing.T) {
	a := int32(10)

	var sb strings.Builder
	require.NoError(t, alias.Describe(&sb, &a))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	addr := fmt.Sprintf("%p", &a)
	require.Equal(t, "p   = "+addr, lines[0])
	require.Equal(t, "*p  = 10", lines[1])
	require.Equal(t, "&a  = "+addr, lines[2])
	require.Equal(t, "len = 4 B", lines[3])
	require.Equal(t, fmt.Sprintf("raw = % x", binary.NativeEndian.AppendUint32(nil, 10)), lines[4])
	require.True(t, strings.HasPrefix(lines[5], "pd  = refused ("))
	require.Contains(t, lines[5], "contract violation")
}
