package commands

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/pkg/lint"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "ContentLint v1.2.3")
	assert.Contains(t, out, fmt.Sprintf("%d built-in rules", lint.Count()))
}
