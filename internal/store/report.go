package store

import (
	"bytes"
	"fmt"
	"os"

	"codeberg.org/ssidwatch/ssidwatch/internal/errors"
	"codeberg.org/ssidwatch/ssidwatch/internal/history"
)

const reportHeader = "SSID\n    timestamp  (latency)\n=========================\n\n"

// FileReport rewrites the full report file on every aggregation cycle.
// The report is a projection of the history, never appended to.
type FileReport struct {
	path string
}

// NewFileReport creates a report writer targeting the given path.
func NewFileReport(path string) *FileReport {
	return &FileReport{path: path}
}

// Write renders one section per identifier in first-seen order, each
// timestamp at millisecond precision with its latency at microsecond
// precision, and replaces the previous report entirely.
func (r *FileReport) Write(h *history.History) error {
	var buf bytes.Buffer
	buf.WriteString(reportHeader)

	for _, s := range h.Series() {
		fmt.Fprintf(&buf, "%s\n", s.SSID)
		for i, ts := range s.Timestamps {
			fmt.Fprintf(&buf, "    %.3f   (%.6f)\n", ts, s.Latencies[i])
		}
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(r.path, buf.Bytes(), defaultFilePerm); err != nil {
		return errors.New().Wrap(ErrReportWrite, err)
	}

	return nil
}
