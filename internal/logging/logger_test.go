package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_Prefix(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "healthcheck")
	logger.Printf("request failed: %s", "boom")

	out := buf.String()
	assert.Contains(t, out, "[healthcheck] ")
	assert.Contains(t, out, "request failed: boom")
}

func TestNewWithWriter_NoComponent(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "").Print("hello")
	assert.NotContains(t, buf.String(), "[")
}

func TestDiscard(t *testing.T) {
	// must not panic
	Discard().Printf("dropped %d", 1)
}
