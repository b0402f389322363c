package report

import (
	"fmt"
	"os"
)

// SaveToFile writes a report to filename, overwriting any existing file.
// The handle is closed on every path; a failed write may leave a partial
// file behind, which the caller reports but does not clean up.
func SaveToFile(filename, content string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file %q: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file %q: %w", filename, cerr)
		}
	}()

	if _, err = f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write report file %q: %w", filename, err)
	}
	return nil
}
