package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/ssidwatch/ssidwatch/internal/store"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservationLogRoundtrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "observations.db")

	log, err := store.NewObservationLog(store.Config{DBPath: dbPath, Enabled: true})
	require.NoError(t, err)

	recorded := time.Now()
	require.NoError(t, log.Record(context.Background(), &store.Observation{
		SSID:       "NetA",
		CapturedAt: 10.0,
		Latency:    0.125,
		RecordedAt: recorded,
	}))
	require.NoError(t, log.Record(context.Background(), &store.Observation{
		SSID:       "NetB",
		CapturedAt: 10.6,
		Latency:    0.25,
		RecordedAt: recorded,
	}))
	require.NoError(t, log.Close())

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query("SELECT ssid, captured_at, latency, recorded_at FROM observations ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		ssid       string
		capturedAt float64
		latency    float64
		recordedAt int64
	}
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.ssid, &r.capturedAt, &r.latency, &r.recordedAt))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())

	require.Len(t, got, 2)
	assert.Equal(t, "NetA", got[0].ssid)
	assert.InDelta(t, 10.0, got[0].capturedAt, 1e-9)
	assert.InDelta(t, 0.125, got[0].latency, 1e-9)
	assert.Equal(t, recorded.Unix(), got[0].recordedAt)
	assert.Equal(t, "NetB", got[1].ssid)
}

func TestObservationLogSchemaVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "observations.db")

	log, err := store.NewObservationLog(store.Config{DBPath: dbPath, Enabled: true})
	require.NoError(t, err)
	require.NoError(t, log.Close())

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	version, err := store.GetSchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, store.SchemaVersion, version)
}

func TestObservationLogDisabledIsNoop(t *testing.T) {
	log, err := store.NewObservationLog(store.Config{Enabled: false})
	require.NoError(t, err)

	require.NoError(t, log.Record(context.Background(), &store.Observation{SSID: "NetA"}))
	require.NoError(t, log.Close())
}

func TestObservationLogRejectsEmptyPath(t *testing.T) {
	_, err := store.NewObservationLog(store.Config{DBPath: "", Enabled: true})
	require.Error(t, err)
}

func TestRecordHonorsCancelledContext(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "observations.db")

	log, err := store.NewObservationLog(store.Config{DBPath: dbPath, Enabled: true})
	require.NoError(t, err)
	defer log.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = log.Record(ctx, &store.Observation{SSID: "NetA", RecordedAt: time.Now()})
	require.Error(t, err)
}
