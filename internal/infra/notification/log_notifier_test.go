package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_NotifyResetToken(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, notifier.NotifyResetToken(context.Background(), "a@example.com", "tok123"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "a@example.com", record["email"])
	assert.Equal(t, "tok123", record["token"])
	assert.Equal(t, "reset_notifier", record["component"])
}
