package scanner_test

import (
	"context"
	"strings"
	"testing"

	"codeberg.org/ssidwatch/ssidwatch/internal/errors"
	"codeberg.org/ssidwatch/ssidwatch/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanParsesCommandOutput(t *testing.T) {
	s := scanner.NewCommand(`printf 'NetA\nNetB\nNetA\n'`)

	ssids, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"NetA", "NetB", "NetA"}, ssids)
}

func TestScanSkipsNoSignalSentinel(t *testing.T) {
	s := scanner.NewCommand(`printf 'x00hidden\nNetA\nx00\nNetB\n'`)

	ssids, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"NetA", "NetB"}, ssids)
}

func TestScanSkipsEmptyLines(t *testing.T) {
	s := scanner.NewCommand(`printf '\nNetA\n\n\nNetB\n'`)

	ssids, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"NetA", "NetB"}, ssids)
}

func TestScanTruncatesLongIdentifiers(t *testing.T) {
	long := strings.Repeat("n", 50)
	s := scanner.NewCommand(`printf '` + long + `\n'`)

	ssids, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, ssids, 1)
	assert.Equal(t, strings.Repeat("n", scanner.MaxSSIDLen), ssids[0])
}

func TestScanCommandFailure(t *testing.T) {
	s := scanner.NewCommand(`exit 3`)

	_, err := s.Scan(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrScanFailed))
}

func TestScanNothingFound(t *testing.T) {
	s := scanner.NewCommand(`true`)

	ssids, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ssids)
}
