package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("trace")
	require.NoError(t, err)
	assert.Equal(t, LevelTrace, lvl)

	lvl, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestModuleGating(t *testing.T) {
	var buf bytes.Buffer
	prev := Root()
	SetDefault(NewLogger(NewTerminalHandlerWithLevel(&buf, LevelTrace, false)))
	defer SetDefault(prev)

	DisableModule(VMMonitoring)
	Trace(VMMonitoring, "fetch", "pc", 0)
	assert.Empty(t, buf.String(), "disabled module must not emit trace records")

	EnableModule(VMMonitoring)
	Trace(VMMonitoring, "fetch", "pc", 0)
	assert.Contains(t, buf.String(), "fetch")
	assert.Contains(t, buf.String(), "module="+VMMonitoring)
	DisableModule(VMMonitoring)
}

func TestEnableModules(t *testing.T) {
	EnableModules("search_mod, decode_mod")
	assert.True(t, isModuleEnabled(SearchMonitoring))
	assert.True(t, isModuleEnabled(DecodeMonitoring))
	DisableModule(SearchMonitoring)
	DisableModule(DecodeMonitoring)
}

func TestTerminalHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewTerminalHandlerWithLevel(&buf, slog.LevelInfo, false)
	l := NewLogger(h)

	l.Debug("", "not shown")
	l.Info("", "shown", "answer", 42)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "answer=42")
}
