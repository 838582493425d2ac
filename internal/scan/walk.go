package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ExpandPaths replaces every directory in paths with the regular files
// beneath it, in lexical order. Other paths are kept as given so that
// load errors are reported per file.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			out = append(out, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				out = append(out, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", path, err)
		}
	}
	return out, nil
}
