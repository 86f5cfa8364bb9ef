package ingest

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindLatest returns the most recently modified file in dir whose base
// name matches the glob pattern. Directory and pattern always come from
// configuration; nothing here is hard-coded to a collector's layout.
func FindLatest(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("ingest: bad pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("ingest: no files matching %q in %s", pattern, dir)
	}

	latest := ""
	var latestMod int64
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest = path
			latestMod = mod
		}
	}

	if latest == "" {
		return "", fmt.Errorf("ingest: no readable files matching %q in %s", pattern, dir)
	}
	return latest, nil
}
