package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapcraft-io/kdbg/internal/exec"
)

func TestCompletePods(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("__complete", "logs", "web"))

	out := ta.out.String()
	assert.Contains(t, out, "web-1\n")
	assert.Contains(t, out, "web-2\n")
	assert.NotContains(t, out, "db-0")
	assert.Contains(t, out, ":4\n")
	assert.Len(t, ta.fake.executed, 1)
}

func TestCompletePods_Namespace(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("__complete", "describe", "-n", "data", ""))

	assert.Equal(t, [][]string{exec.ListPodsArgs("data")}, ta.fake.executed)
}

func TestCompletePods_OnlyFirstArgument(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("__complete", "forward", "db", ""))

	assert.Empty(t, ta.fake.executed)
}

func TestCompleteContexts(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.run("__complete", "list", "--context", "st"))

	out := ta.out.String()
	assert.Contains(t, out, "staging\n")
	assert.NotContains(t, out, "dev\n")
}
