package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "trailing newline", in: "@@\n@.\n", want: []string{"@@", "@."}},
		{name: "no trailing newline", in: "@@\n@.", want: []string{"@@", "@."}},
		{name: "crlf", in: "@@\r\n.@\r\n", want: []string{"@@", ".@"}},
		{name: "interior blank", in: "@\n\n@\n", want: []string{"@", "", "@"}},
		{name: "ragged", in: "@@@\n@\n", want: []string{"@@@", "@"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadLinesLongLine(t *testing.T) {
	long := strings.Repeat("@", 200_000)
	got, err := ReadLines(strings.NewReader(long + "\n."))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0], 200_000)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("..@\n@@@\n"), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"..@", "@@@"}, got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
