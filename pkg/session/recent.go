package session

import "path/filepath"

// RecentFiles tracks the most recently opened or saved paths, newest first,
// deduplicated by cleaned path and capped at a fixed size. In-memory only;
// the list does not survive a restart.
type RecentFiles struct {
	paths []string
	max   int
}

// NewRecentFiles creates a tracker capped at max entries.
func NewRecentFiles(max int) *RecentFiles {
	if max <= 0 {
		max = 10
	}
	return &RecentFiles{
		paths: make([]string, 0, max),
		max:   max,
	}
}

// Add records a path, moving it to the front if already present.
func (r *RecentFiles) Add(path string) {
	cleaned := filepath.Clean(path)

	for i, p := range r.paths {
		if p == cleaned {
			// Move to front
			copy(r.paths[1:i+1], r.paths[0:i])
			r.paths[0] = cleaned
			return
		}
	}

	r.paths = append([]string{cleaned}, r.paths...)
	if len(r.paths) > r.max {
		r.paths = r.paths[:r.max]
	}
}

// Paths returns the tracked paths, most recent first.
func (r *RecentFiles) Paths() []string {
	return r.paths
}

// Len returns the number of tracked paths.
func (r *RecentFiles) Len() int {
	return len(r.paths)
}
