package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	importPrefix = "imported"
	manualPrefix = "manual"
)

// FormatImportID returns a transaction ID like "imported-1706745600000-3"
// for the index-th transaction of an import started at ts.
func FormatImportID(ts time.Time, index int) string {
	return fmt.Sprintf("%s-%d-%d", importPrefix, ts.UnixMilli(), index)
}

// ParseImportID splits an import ID into its batch time and index.
func ParseImportID(id string) (ts time.Time, index int, err error) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 || parts[0] != importPrefix {
		return time.Time{}, 0, fmt.Errorf("invalid import ID format: %q", id)
	}

	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid timestamp in import ID %q: %w", id, err)
	}

	index, err = strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid index in import ID %q: %w", id, err)
	}
	if index < 0 {
		return time.Time{}, 0, fmt.Errorf("negative index in import ID %q", id)
	}

	return time.UnixMilli(ms).UTC(), index, nil
}

// IsImportID reports whether id was produced by FormatImportID.
func IsImportID(id string) bool {
	_, _, err := ParseImportID(id)
	return err == nil
}

// FormatManualID returns a transaction ID like "manual-1706745600000" for a
// transaction entered by hand at ts.
func FormatManualID(ts time.Time) string {
	return fmt.Sprintf("%s-%d", manualPrefix, ts.UnixMilli())
}
