package document

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Stats tracks document discovery.
type Stats struct {
	Discovered int // files matched by the patterns
	Selected   int // files kept after filtering
	Skipped    int // hidden or gitignored files
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads .gitignore from the working directory once.
// A missing file means nothing is ignored.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether path is excluded from discovery: dot files,
// and relative paths matched by .gitignore.
func shouldSkipFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return true
	}

	// Absolute paths are outside the project's .gitignore.
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// Discover expands glob patterns ("**" included) into document paths, in
// pattern order without duplicates. Directories are ignored.
func Discover(patterns []string) ([]string, Stats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := Stats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.Discovered++

			if shouldSkipFile(match) {
				stats.Skipped++
				continue
			}
			files = append(files, match)
			stats.Selected++
		}
	}

	return files, stats, nil
}
