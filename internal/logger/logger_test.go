package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestInitializeWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, "debug", "json")
	t.Cleanup(func() { defaultLogger = nil })

	ExitMethodWithError("EndRent", errors.New("scooter not rented"), "scooter_id", "S1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "EndRent", line["method"])
	assert.Equal(t, "S1", line["scooter_id"])
	assert.Equal(t, "scooter not rented", line["error"])
}

func TestInitializeWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, "info", "text")
	t.Cleanup(func() { defaultLogger = nil })

	StoreCall("scooter.create", "scooter_id", "S1")
	assert.Empty(t, buf.String())

	Info("Scooter added", "scooter_id", "S1")
	assert.Contains(t, buf.String(), "scooter_id=S1")
}
