// Package persist durably writes forecast report documents to disk.
//
// Writes are atomic: the full content is staged in a sibling temporary
// file and moved into place in a single step, so no observer ever sees a
// partially written report. An existing destination is never clobbered
// unless the caller forces it, and staging artifacts are removed on both
// success and failure paths.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sprintcast/sprintcast/schema"
)

// ErrOutputExists is returned when the destination already exists and the
// write was not forced.
var ErrOutputExists = errors.New("output file already exists")

// WriteReport persists the report as indented JSON at path. When force is
// false an atomic existence check claims the destination first, so two
// concurrent invocations cannot both win.
func WriteReport(path string, report *schema.Report, force bool) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("report serialization failed: %w", err)
	}

	placeholder := false
	if !force {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				return fmt.Errorf("%w: %s", ErrOutputExists, path)
			}
			return fmt.Errorf("cannot claim output path %s: %w", path, err)
		}
		_ = f.Close()
		placeholder = true
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	replaced := false
	defer func() {
		if !replaced {
			_ = os.Remove(tmpPath)
			if placeholder {
				_ = os.Remove(path)
			}
		}
	}()

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("cannot stage report to %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("cannot move report into place at %s: %w", path, err)
	}
	replaced = true
	return nil
}
