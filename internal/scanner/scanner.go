package scanner

import (
	"context"
	"os/exec"
	"strings"

	"codeberg.org/ssidwatch/ssidwatch/internal/errors"
)

const (
	// MaxSSIDLen bounds identifier length; longer names are truncated.
	MaxSSIDLen = 31

	// noSignalSentinel prefixes lines emitted for networks without a
	// readable name; such lines carry no identifier and are skipped.
	noSignalSentinel = "x00"
)

// CommandScanner shells out to an external scan command and parses its
// newline-separated output.
type CommandScanner struct {
	command string
}

// NewCommand creates a scanner around the given shell command line.
func NewCommand(command string) *CommandScanner {
	return &CommandScanner{command: command}
}

// Scan runs the command once and returns the cleaned identifiers in
// output order.
func (s *CommandScanner) Scan(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", s.command)

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrScanFailed, err)
	}

	return parseOutput(string(out)), nil
}

func parseOutput(out string) []string {
	var ssids []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, noSignalSentinel) {
			continue
		}
		if len(line) > MaxSSIDLen {
			line = line[:MaxSSIDLen]
		}
		ssids = append(ssids, line)
	}

	return ssids
}
