package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/ssidwatch/ssidwatch/internal/history"
	"codeberg.org/ssidwatch/ssidwatch/internal/logger"
	"codeberg.org/ssidwatch/ssidwatch/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init(false, false, true)
	os.Exit(m.Run())
}

func TestReportFormat(t *testing.T) {
	h := history.New()
	h.Observe("NetA", 10.0, 10.1)
	h.Observe("NetA", 10.5, 10.55)
	h.Observe("NetB", 10.6, 10.85)

	path := filepath.Join(t.TempDir(), "ssids.txt")
	r := store.NewFileReport(path)
	require.NoError(t, r.Write(h))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "SSID\n" +
		"    timestamp  (latency)\n" +
		"=========================\n" +
		"\n" +
		"NetA\n" +
		"    10.000   (0.100000)\n" +
		"    10.500   (0.050000)\n" +
		"\n" +
		"NetB\n" +
		"    10.600   (0.250000)\n" +
		"\n"
	assert.Equal(t, want, string(got))
}

func TestReportOverwritesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssids.txt")
	r := store.NewFileReport(path)

	h := history.New()
	h.Observe("NetA", 1.0, 1.1)
	require.NoError(t, r.Write(h))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	// Second write regenerates the whole file, it does not append.
	require.NoError(t, r.Write(h))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReportWriteFailure(t *testing.T) {
	r := store.NewFileReport(filepath.Join(t.TempDir(), "missing", "ssids.txt"))

	err := r.Write(history.New())
	require.Error(t, err)
}

func TestEmptyHistoryStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssids.txt")
	r := store.NewFileReport(path)

	require.NoError(t, r.Write(history.New()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SSID\n    timestamp  (latency)\n=========================\n\n", string(got))
}
