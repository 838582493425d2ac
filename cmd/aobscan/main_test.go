package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/aob/pattern"
	"github.com/coregx/aob/syntax"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func fixture(t *testing.T) (plain, gz string) {
	t.Helper()
	dir := t.TempDir()
	data := []byte("nevermore, for evermore, or more")

	plain = filepath.Join(dir, "raven.txt")
	require.NoError(t, os.WriteFile(plain, data, 0o644))

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	gz = filepath.Join(dir, "raven.txt.gz")
	require.NoError(t, os.WriteFile(gz, buf.Bytes(), 0o644))
	return plain, gz
}

func TestOffsets(t *testing.T) {
	plain, _ := fixture(t)

	stdout, _, err := execute(t, "6F 72", plain)
	require.NoError(t, err)
	assert.Equal(t, []string{
		plain + ":0x6", plain + ":0xc", plain + ":0x14", plain + ":0x19", plain + ":0x1d",
	}, strings.Fields(stdout))

	stdout, _, err = execute(t, "-d", "-m", "2", "6F 72", plain)
	require.NoError(t, err)
	assert.Equal(t, plain+":6\n"+plain+":12\n", stdout)
}

func TestCount(t *testing.T) {
	plain, gz := fixture(t)

	stdout, _, err := execute(t, "-c", "6F 72", plain, gz)
	require.NoError(t, err)
	assert.Equal(t, plain+":5\n"+gz+":5\n", stdout)

}

func TestDirectoryArgument(t *testing.T) {
	plain, gz := fixture(t)

	stdout, _, err := execute(t, "-c", "6F 72", filepath.Dir(plain))
	require.NoError(t, err)
	assert.Equal(t, plain+":5\n"+gz+":5\n", stdout)
}

func TestNoInflateSearchesRawBytes(t *testing.T) {
	_, gz := fixture(t)
	info, err := os.Stat(gz)
	require.NoError(t, err)

	stdout, _, err := execute(t, "--json", "-c", "--no-inflate", "6F 72", gz)
	require.NoError(t, err)
	var c jsonCount
	require.NoError(t, json.Unmarshal([]byte(stdout), &c))
	assert.Equal(t, gz, c.Path)
	assert.Empty(t, c.Compression)
	assert.Equal(t, int(info.Size()), c.Size)
}

func TestJSON(t *testing.T) {
	plain, gz := fixture(t)

	stdout, _, err := execute(t, "--json", "-c", "? 72 ?", gz)
	require.NoError(t, err)
	var c jsonCount
	require.NoError(t, json.Unmarshal([]byte(stdout), &c))
	assert.Equal(t, jsonCount{Path: gz, Count: 7, Size: 32, Compression: "gzip"}, c)

	stdout, _, err = execute(t, "--json", "--method", "scalar", "--no-prefilter", "6E 65 76", plain)
	require.NoError(t, err)
	var m jsonMatch
	require.NoError(t, json.Unmarshal([]byte(stdout), &m))
	assert.Equal(t, jsonMatch{Path: plain, Offset: 0}, m)
}

func TestErrors(t *testing.T) {
	plain, _ := fixture(t)

	_, _, err := execute(t, "6F 72")
	assert.Error(t, err, "needs at least one path")

	_, _, err = execute(t, "6F 7Z", plain)
	assert.ErrorIs(t, err, syntax.ErrInvalidHexdigit)

	_, _, err = execute(t, "--method", "avx512", "6F 72", plain)
	assert.ErrorContains(t, err, "unknown method")

	_, stderr, err := execute(t, "6F 72", plain, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "1 file(s) could not be searched")
	assert.Contains(t, stderr, "skipped file")
}

func TestParseMethod(t *testing.T) {
	m, err := parseMethod("SWAR64")
	require.NoError(t, err)
	assert.Equal(t, pattern.Swar64, m)

	m, err = parseMethod("auto")
	require.NoError(t, err)
	assert.Equal(t, pattern.MethodAuto, m)
}
