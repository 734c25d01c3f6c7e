package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libprime/internal/domain"
	"libprime/internal/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheck_PrintsVerdicts(t *testing.T) {
	out, err := run(t, "check", "--color=false", "--", "1234567", "7919", "-5")
	require.NoError(t, err)
	assert.Equal(t, "1234567 is not a prime\n7919 is prime\n-5 is not a prime\n", out)
}

func TestCheck_StringArgumentAborts(t *testing.T) {
	out, err := run(t, "check", "--color=false", "1234567", "foo", "7919")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
	assert.Equal(t, "1234567 is not a prime\n", out)
	assert.NotContains(t, out, "foo")
}

func TestCheck_UnknownBackend(t *testing.T) {
	_, err := run(t, "check", "--backend", "python", "7")
	assert.Error(t, err)
}

func TestCheck_MissingLibrary(t *testing.T) {
	_, err := run(t, "check", "--lib", filepath.Join(t.TempDir(), "libprime.so"), "7")
	assert.ErrorIs(t, err, domain.ErrLibrary)
}

func TestScan_WritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json")
	out, err := run(t, "scan", "--from", "0", "--to", "10000", "--workers", "3", "--verify", "--out", path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "1229 primes in [0, 10000]\n"), out)

	report, ok, err := store.ReadReport(path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1229, report.Count)
	assert.True(t, report.Verified)
}

func TestScan_List(t *testing.T) {
	out, err := run(t, "scan", "--from=-3", "--to=10", "--list")
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n5\n7\n4 primes in [-3, 10]\n", out)
}

func TestFingerprint_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libprime.so")
	require.NoError(t, os.WriteFile(path, []byte("build"), 0o644))
	out, err := run(t, "fingerprint", path)
	require.NoError(t, err)
	assert.Regexp(t, `^Fingerprint: [0-9a-f]{20}\n$`, out)
}

func TestFingerprint_DoesNotLoadLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libprime.so")
	require.NoError(t, os.WriteFile(path, []byte("not an object file"), 0o644))
	out, err := run(t, "fingerprint", "--lib", path)
	require.NoError(t, err)
	assert.Regexp(t, `^Fingerprint: [0-9a-f]{20}\n$`, out)
}

func TestCheck_Width(t *testing.T) {
	out, err := run(t, "check", "--color=false", "--width", "32", "4294967291", "4294967295")
	require.NoError(t, err)
	assert.Equal(t, "4294967291 is prime\n4294967295 is not a prime\n", out)

	out, err = run(t, "check", "--color=false", "--width", "64", "18446744073709551557")
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551557 is prime\n", out)

	_, err = run(t, "check", "--width", "32", "4294967296")
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	_, err = run(t, "check", "--width", "8", "7")
	assert.Error(t, err)
}
