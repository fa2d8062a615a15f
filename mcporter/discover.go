package mcporter

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultConfigPatterns are the locations searched for a bridge config file,
// in priority order, relative to a search root.
var DefaultConfigPatterns = []string{
	"config/mcporter.{json,jsonc}",
	".mcporter/mcporter.{json,jsonc}",
	".openclaw/workspace/config/mcporter.json",
}

// Discover returns the first regular file in fsys matching patterns, tried
// in order. Within one pattern, matches are taken in lexical order. It
// returns "" when nothing matches.
func Discover(fsys iofs.FS, patterns []string) (string, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return "", fmt.Errorf("invalid glob pattern: %s", pattern)
		}
		var matches []string
		err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
			if d.IsDir() {
				return nil
			}
			matches = append(matches, path)
			return nil
		})
		if err != nil {
			return "", fmt.Errorf("glob %s: %w", pattern, err)
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return matches[0], nil
		}
	}
	return "", nil
}

// DiscoverIn runs Discover with DefaultConfigPatterns rooted at dir and
// returns the match joined to dir. A missing dir is not an error.
func DiscoverIn(dir string) (string, error) {
	if dir == "" {
		return "", nil
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	match, err := Discover(os.DirFS(dir), DefaultConfigPatterns)
	if err != nil || match == "" {
		return "", err
	}
	return filepath.Join(dir, filepath.FromSlash(match)), nil
}
