// Package gold implements golden files.
package gold

import (
	"bytes"
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

// normalizeNewlines normalizes \r\n (windows) to \n (unix).
func normalizeNewlines(d []byte) []byte {
	d = bytes.ReplaceAll(d, []byte{13, 10}, []byte{10})
	d = bytes.ReplaceAll(d, []byte{13}, []byte{10})
	return d
}

// Str checks text golden file.
func Str(t testing.TB, s string, name ...string) {
	t.Helper()

	if len(name) == 0 {
		name = []string{t.Name() + ".txt"}
	}
	p := Path(name...)
	if Update {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(s), 0o644))
	}
	data := ReadFile(t, name...)
	require.Equal(t,
		string(normalizeNewlines(data)),
		string(normalizeNewlines([]byte(s))),
		"golden file mismatch: %s", p,
	)
}
