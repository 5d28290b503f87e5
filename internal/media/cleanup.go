package media

import (
	"io/fs"
	"os"
	"path/filepath"
)

// UnusedDirName is where MoveUnused parks files no message linked to.
const UnusedDirName = "unused"

// MoveUnused moves every file under dir that is not in used (keyed by
// absolute-ish resolved path, as returned by Resolve) into dir/unused.
// Per-file failures are skipped; the returned count is files actually moved.
func MoveUnused(dir string, used map[string]bool) (int, error) {
	dest := filepath.Join(dir, UnusedDirName)

	var candidates []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path == dest {
				return filepath.SkipDir
			}
			return nil
		}
		if !used[path] {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return 0, err
	}
	moved := 0
	for _, path := range candidates {
		if os.Rename(path, filepath.Join(dest, filepath.Base(path))) == nil {
			moved++
		}
	}
	return moved, nil
}
