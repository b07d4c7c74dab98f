package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gstoney/advance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const headerLayout = `
[[field]]
name = "version"
kind = "u8"

[[field]]
name = "name"
kind = "string"
len_from = "len"
`

const lengthPrefixedLayout = `
[[field]]
name = "len"
kind = "u8"

[[field]]
name = "name"
kind = "string"
len_from = "len"
`

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer

	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut

	err = app.Run(append([]string{"advdump"}, args...))
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	unsetEnv(t, "ADVDUMP_LAYOUT")
	dir := t.TempDir()
	lay := writeFile(t, dir, "layout.toml", []byte(lengthPrefixedLayout))
	in := writeFile(t, dir, "in.bin", []byte{0x03, 'b', 'o', 'b'})

	out, _, err := runApp(t, "--layout", lay, in)
	require.NoError(t, err)
	assert.Equal(t, "len = 3\nname = \"bob\"\n", out)
}

func TestRun_Repeat(t *testing.T) {
	unsetEnv(t, "ADVDUMP_LAYOUT")
	dir := t.TempDir()
	lay := writeFile(t, dir, "layout.toml", []byte(lengthPrefixedLayout))
	in := writeFile(t, dir, "in.bin", []byte{0x01, 'a', 0x02, 'b', 'c'})

	out, _, err := runApp(t, "-l", lay, "--repeat", in)
	require.NoError(t, err)
	assert.Equal(t, "# record 0\nlen = 1\nname = \"a\"\n# record 1\nlen = 2\nname = \"bc\"\n", out)
}

func TestRun_ShortRead(t *testing.T) {
	unsetEnv(t, "ADVDUMP_LAYOUT")
	dir := t.TempDir()
	lay := writeFile(t, dir, "layout.toml", []byte(lengthPrefixedLayout))
	in := writeFile(t, dir, "in.bin", []byte{0x05, 'a', 'b'})

	_, stderr, err := runApp(t, "--layout", lay, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, advance.ErrNotEnoughData)
	assert.Contains(t, err.Error(), "record 0")
	assert.Contains(t, stderr, "needed=5")
	assert.Contains(t, stderr, "remaining=2")
}

func TestRun_TrailingData(t *testing.T) {
	unsetEnv(t, "ADVDUMP_LAYOUT")
	dir := t.TempDir()
	lay := writeFile(t, dir, "layout.toml", []byte(lengthPrefixedLayout))
	in := writeFile(t, dir, "in.bin", []byte{0x01, 'a', 0xff})

	_, _, err := runApp(t, "--layout", lay, in)
	assert.ErrorIs(t, err, ErrTrailingData)

	out, _, err := runApp(t, "--layout", lay, "--allow-trailing", in)
	require.NoError(t, err)
	assert.Equal(t, "len = 1\nname = \"a\"\n", out)
}

func TestRun_InvalidLayout(t *testing.T) {
	unsetEnv(t, "ADVDUMP_LAYOUT")
	dir := t.TempDir()
	lay := writeFile(t, dir, "layout.toml", []byte(headerLayout))
	in := writeFile(t, dir, "in.bin", []byte{0x01})

	_, _, err := runApp(t, "--layout", lay, in)
	assert.ErrorContains(t, err, "len_from")
}

func TestRun_Usage(t *testing.T) {
	_, _, err := runApp(t, "--layout", "x.toml")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestRun_NoLayout(t *testing.T) {
	unsetEnv(t, "ADVDUMP_LAYOUT")
	dir := t.TempDir()
	in := writeFile(t, dir, "in.bin", []byte{0x01})

	_, _, err := runApp(t, in)
	assert.ErrorIs(t, err, ErrNoLayout)
}

func TestRun_EnvFile(t *testing.T) {
	unsetEnv(t, "ADVDUMP_LAYOUT")
	unsetEnv(t, "ADVDUMP_REPEAT")
	dir := t.TempDir()
	lay := writeFile(t, dir, "layout.toml", []byte(lengthPrefixedLayout))
	in := writeFile(t, dir, "in.bin", []byte{0x01, 'a', 0x01, 'b'})
	env := writeFile(t, dir, "advdump.env", []byte("ADVDUMP_LAYOUT="+lay+"\nADVDUMP_REPEAT=true\n"))

	out, _, err := runApp(t, "--env-file", env, in)
	require.NoError(t, err)
	assert.Contains(t, out, "# record 1\n")
	assert.Contains(t, out, "name = \"b\"\n")
}

func TestRun_MissingEnvFile(t *testing.T) {
	_, _, err := runApp(t, "--env-file", filepath.Join(t.TempDir(), "nope.env"), "in.bin")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_BadBoolEnv(t *testing.T) {
	unsetEnv(t, "ADVDUMP_LAYOUT")
	t.Setenv("ADVDUMP_VERBOSE", "maybe")
	dir := t.TempDir()
	lay := writeFile(t, dir, "layout.toml", []byte(lengthPrefixedLayout))
	in := writeFile(t, dir, "in.bin", []byte{0x00})

	_, _, err := runApp(t, "--layout", lay, in)
	assert.ErrorContains(t, err, "ADVDUMP_VERBOSE")
}

func TestRun_Verbose(t *testing.T) {
	unsetEnv(t, "ADVDUMP_LAYOUT")
	dir := t.TempDir()
	lay := writeFile(t, dir, "layout.toml", []byte(lengthPrefixedLayout))
	in := writeFile(t, dir, "in.bin", []byte{0x00})

	out, stderr, err := runApp(t, "--layout", lay, "-v", in)
	require.NoError(t, err)
	assert.Equal(t, "len = 0\nname = \"\"\n", out)
	assert.Contains(t, stderr, "decoded record")
}
