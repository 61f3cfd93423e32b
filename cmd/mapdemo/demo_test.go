package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeEntries(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "entries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMapDemo_Ints(t *testing.T) {
	t.Parallel()

	out, err := run(t)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Map by order (low to high):",
		"  1: hello1",
		"  2: hello2",
		"  40: hello40",
		"Map size: 3",
		"",
		"Copy by order (low to high):",
		"  1: hello1",
		"  2: hello2",
		"  40: hello40",
		"Copy size: 3",
		"",
	}, "\n")

	assert.Equal(t, want, out)
}

func TestMapDemo_Strings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		order []string
	}{
		{
			name:  "natural",
			args:  []string{"--strings"},
			order: []string{"Banana", "apple", "file1", "file2", "file10"},
		},
		{
			name:  "lexical",
			args:  []string{"--strings", "--order", "lexical"},
			order: []string{"Banana", "apple", "file1", "file10", "file2"},
		},
		{
			name:  "collate",
			args:  []string{"--strings", "--order", "collate", "--locale", "en"},
			order: []string{"apple", "Banana", "file1", "file10", "file2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, tt.args...)
			require.NoError(t, err)

			mapSection := strings.SplitN(out, "\n\n", 2)[0]

			var keys []string

			for _, line := range strings.Split(mapSection, "\n") {
				if key, _, ok := strings.Cut(strings.TrimPrefix(line, "  "), ":"); ok && strings.HasPrefix(line, "  ") {
					keys = append(keys, key)
				}
			}

			assert.Equal(t, tt.order, keys)
		})
	}
}

func TestMapDemo_Entries(t *testing.T) {
	t.Parallel()

	t.Run("int keys in file order are sorted", func(t *testing.T) {
		t.Parallel()

		path := writeEntries(t, "30: thirty\n-1: minus one\n7: seven\n")

		out, err := run(t, "--entries", path)
		require.NoError(t, err)

		assert.Contains(t, out, "Map by order (low to high):\n  -1: minus one\n  7: seven\n  30: thirty\nMap size: 3\n")
		assert.Contains(t, out, "Copy size: 3\n")
	})

	t.Run("string keys", func(t *testing.T) {
		t.Parallel()

		path := writeEntries(t, "b: two\na: one\n")

		out, err := run(t, "--strings", "--entries", path)
		require.NoError(t, err)

		assert.Contains(t, out, "  a: one\n  b: two\n")
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, "--entries", writeEntries(t, ""))
		require.NoError(t, err)
		assert.Contains(t, out, "Map size: 0\n")
	})

	t.Run("not a mapping", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "--entries", writeEntries(t, "- 1\n- 2\n"))
		require.ErrorIs(t, err, ErrInvalidEntries)
	})

	t.Run("non-integer key", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "--entries", writeEntries(t, "one: 1\n"))
		require.ErrorIs(t, err, ErrInvalidEntries)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, "--entries", filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestMapDemo_BadFlags(t *testing.T) {
	t.Parallel()

	_, err := run(t, "--strings", "--order", "random")
	require.ErrorIs(t, err, ErrUnknownOrder)

	_, err = run(t, "--strings", "--order", "collate", "--locale", "not a locale!")
	require.Error(t, err)

	_, err = run(t, "extra")
	require.Error(t, err)
}
