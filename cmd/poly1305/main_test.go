package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const (
	testKey = "85d6be7857556d337f4452fe42d506a80103808afb0db2fd4abff6af4149f51b"
	testTag = "a8061dc1305136c6c22b8baf0c0127a9"
)

func writeMessage(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "msg")
	require.NoError(t, os.WriteFile(name, []byte("Cryptographic Forum Research Group"), 0o600))
	return name
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}
	err = app.Run(append([]string{"poly1305"}, args...))
	return out.String(), errOut.String(), err
}

func TestGen(t *testing.T) {
	stdout, _, err := run(t, "gen", testKey, writeMessage(t))
	require.NoError(t, err)
	assert.Equal(t, testTag+"\n", stdout)
}

func TestGenThenCheck(t *testing.T) {
	name := writeMessage(t)
	tag, _, err := run(t, "gen", testKey, name)
	require.NoError(t, err)

	stdout, _, err := run(t, "check", testKey, name, strings.TrimSpace(tag))
	require.NoError(t, err)
	assert.Equal(t, "ACCEPT\n", stdout)
}

func TestCheckUpperCaseTag(t *testing.T) {
	stdout, _, err := run(t, "check", testKey, writeMessage(t), strings.ToUpper(testTag))
	require.NoError(t, err)
	assert.Equal(t, "ACCEPT\n", stdout)
}

func TestCheckRejects(t *testing.T) {
	name := writeMessage(t)
	corrupt := []byte(testTag)
	for i := 0; i < len(corrupt); i += 2 {
		bad := bytes.Clone(corrupt)
		if bad[i] == '0' {
			bad[i] = '1'
		} else {
			bad[i] = '0'
		}
		stdout, _, err := run(t, "check", testKey, name, string(bad))
		require.NoError(t, err)
		assert.Equal(t, "REJECT\n", stdout, "tag %s", bad)
	}

	for _, tag := range []string{"", "zz", testTag[:30], testTag + "00"} {
		stdout, _, err := run(t, "check", testKey, name, tag)
		require.NoError(t, err)
		assert.Equal(t, "REJECT\n", stdout, "tag %q", tag)
	}
}

func TestErrors(t *testing.T) {
	name := writeMessage(t)
	missing := filepath.Join(t.TempDir(), "missing")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"gen arguments", []string{"gen", testKey}, "incorrect number of arguments"},
		{"check arguments", []string{"check", testKey, name}, "incorrect number of arguments"},
		{"short key", []string{"gen", testKey[:60], name}, "key must be 32 bytes"},
		{"non-hex key", []string{"gen", "g" + testKey[1:], name}, "decoding key"},
		{"missing file", []string{"gen", testKey, missing}, "reading"},
		{"check missing file", []string{"check", testKey, missing, testTag}, "reading"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.args...)
			require.Error(t, err)
			var exit cli.ExitCoder
			require.ErrorAs(t, err, &exit)
			assert.Equal(t, 1, exit.ExitCode())
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.want)
		})
	}
}
