package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	WithComponent(l, "wallet").Info("statement served")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "wallet")
	assert.Contains(t, out, "statement served")
}
