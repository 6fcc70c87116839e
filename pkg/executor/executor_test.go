package executor

import (
	"bytes"
	"context"
	"testing"

	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput(t *testing.T) {
	e := New(Options{})

	t.Run("captures_stdout", func(t *testing.T) {
		out, err := e.Output(context.Background(), "sh", "-c", "echo hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(out))
	})

	t.Run("failure_keeps_exit_code_and_stderr", func(t *testing.T) {
		_, err := e.Output(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommand))
		assert.Equal(t, 3, ExitCode(err))
		assert.Equal(t, "broken", Stderr(err))
		assert.Contains(t, err.Error(), "exit code: 3")
	})

	t.Run("missing_program", func(t *testing.T) {
		_, err := e.Output(context.Background(), "garnix-test-no-such-program")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCommand))
		assert.Equal(t, -1, ExitCode(err))
	})

	t.Run("extra_env", func(t *testing.T) {
		withEnv := New(Options{Env: []string{"GARNIX_TEST_VALUE=42"}})
		out, err := withEnv.Output(context.Background(), "sh", "-c", "echo $GARNIX_TEST_VALUE")
		require.NoError(t, err)
		assert.Equal(t, "42\n", string(out))
	})
}

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := New(Options{Stdout: &stdout, Stderr: &stderr})

	require.NoError(t, e.Run(context.Background(), "sh", "-c", "echo out; echo err >&2"))
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())

	err := e.Run(context.Background(), "sh", "-c", "exit 1")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
}

func TestAvailable(t *testing.T) {
	e := New(Options{})
	assert.True(t, e.Available("sh"))
	assert.False(t, e.Available("garnix-test-no-such-program"))
}
