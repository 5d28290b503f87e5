// Package media locates attachment files referenced by parsed messages and
// tidies up the ones nothing referenced.
package media

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolve maps a filename token to an actual file under dir. It tries the
// exact name first, then walks the tree for files whose name contains the
// token's stem with the same extension, preferring the newest. A miss or any
// filesystem trouble just means "no link" for that message.
func Resolve(dir, token string) (string, bool) {
	if dir == "" || token == "" {
		return "", false
	}

	exact := filepath.Join(dir, token)
	if info, err := os.Stat(exact); err == nil && !info.IsDir() {
		return exact, true
	}

	ext := strings.ToLower(filepath.Ext(token))
	stem := strings.ToLower(strings.TrimSuffix(token, filepath.Ext(token)))
	if stem == "" {
		return "", false
	}

	var best string
	var bestMod int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		if !strings.HasSuffix(name, ext) {
			return nil
		}
		if !strings.Contains(strings.TrimSuffix(name, ext), stem) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if best == "" || info.ModTime().UnixNano() > bestMod {
			best = path
			bestMod = info.ModTime().UnixNano()
		}
		return nil
	})
	if err != nil || best == "" {
		return "", false
	}
	return best, true
}
