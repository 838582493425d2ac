//go:build !unix

package scan

import (
	"fmt"
	"os"
)

// mapFile reads the whole file on platforms without mmap.
func mapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, noRelease, nil
}
