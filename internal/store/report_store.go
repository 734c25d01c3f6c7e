package store

import (
	"fmt"
	"os"

	"libprime/internal/domain"
)

const reportMode os.FileMode = 0o644

// WriteReport saves r to path, replacing any previous report.
func WriteReport(path string, r domain.ScanReport) error {
	if err := writeJSON(path, r, reportMode); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads the report at path. ok is false when no report exists.
func ReadReport(path string) (r domain.ScanReport, ok bool, err error) {
	ok, err = readJSON(path, &r)
	if err != nil {
		return domain.ScanReport{}, false, fmt.Errorf("read report %s: %w", path, err)
	}
	return r, ok, nil
}
