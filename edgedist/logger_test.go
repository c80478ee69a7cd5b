package edgedist_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/proxnet/edgedist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WarningsAndCompletion(t *testing.T) {
	var buf bytes.Buffer
	log := edgedist.NewJSONLogger(&buf, slog.LevelDebug)

	tbl := relocTable(t,
		fix{id: "A", x: 0, y: 0, tg: 1},
		fix{id: "A", x: 1, y: 0, tg: 1},
	)
	_, err := edgedist.EdgeDist(tbl, baseOpts(5, edgedist.WithLogger(log))...)
	require.NoError(t, err)

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, 5.0, rec["threshold"], "threshold is attached to every record")
		msgs = append(msgs, rec["msg"].(string))
	}
	require.Len(t, msgs, 4)
	assert.Contains(t, msgs[0], "duplicate id")
	assert.Equal(t, []string{"input validated", "group matched", "edge list built"}, msgs[1:])
}

func TestLogger_Rejected(t *testing.T) {
	var buf bytes.Buffer
	log := edgedist.NewTextLogger(&buf, slog.LevelInfo)

	_, err := edgedist.EdgeDist(nil, baseOpts(5, edgedist.WithLogger(log))...)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "input rejected")
	assert.Contains(t, buf.String(), "table required")
}

func TestNoopLogger_Discards(t *testing.T) {
	// must not panic nor write anywhere observable
	log := edgedist.NoopLogger()
	log.LogCompleted(1, 0)
	assert.NotNil(t, edgedist.NewLogger(nil))
}
