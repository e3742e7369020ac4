package windgen

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/edsrzf/mmap-go"
	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// ScanResult is the outcome of scanning the configured content set.
//
// Candidates holds each candidate string once, in first-discovery order
// over the canonical (sorted) file list. Using the canonical order rather
// than scan completion order keeps output identical regardless of how
// parallel scanning interleaves.
type ScanResult struct {
	Candidates []string
	Stats      ScanStats
}

// Files at or above this size are read through mmap instead of ReadFile.
const mmapThreshold = 1 << 20

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile excludes gitignored files from scanning. Only relative
// paths are checked: absolute paths (like /tmp/...) are outside the project
// and not subject to its gitignore.
func shouldSkipFile(path string) bool {
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanContent expands the content glob patterns and extracts utility-class
// candidates from every matched file. Files are scanned in parallel; a
// single unreadable file fails the whole scan with a ScanError, since a
// partial scan could silently drop styles.
func ScanContent(patterns []string) (*ScanResult, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, err
	}

	perFile := make([][]string, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			content, done, err := readSource(file)
			if err != nil {
				return &ScanError{Path: file, Err: err}
			}
			defer done()
			perFile[i] = ExtractCandidates(content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in canonical file order, keeping first occurrence only.
	result := &ScanResult{Stats: stats}
	seen := make(map[string]bool)
	for _, candidates := range perFile {
		for _, c := range candidates {
			if !seen[c] {
				seen[c] = true
				result.Candidates = append(result.Candidates, c)
			}
		}
	}
	return result, nil
}

// expandGlobPatterns expands glob patterns to a sorted, deduplicated file
// list. Sorting pins the canonical discovery order.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, &ConfigError{Err: err}
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			seen[match] = true
			stats.FilesScanned++
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// readSource reads a file, memory-mapping large files to avoid holding big
// per-worker copies. The returned closer must be called after tokenizing;
// ExtractCandidates copies the bytes it keeps.
func readSource(path string) ([]byte, func(), error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.Size() < mmapThreshold {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		return content, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// mmap can fail on exotic filesystems; fall back to a plain read.
		content, rerr := os.ReadFile(path)
		f.Close()
		if rerr != nil {
			return nil, nil, rerr
		}
		return content, func() {}, nil
	}
	return m, func() {
		m.Unmap()
		f.Close()
	}, nil
}

// classSafe marks the characters a candidate token may contain: the
// alphanumerics plus the punctuation used for variant separators,
// arbitrary-value brackets, negative markers, and the important marker.
var classSafe [256]bool

func init() {
	for c := 'a'; c <= 'z'; c++ {
		classSafe[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		classSafe[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		classSafe[c] = true
	}
	for _, c := range []byte{'-', '_', ':', '.', '/', '!', '#', '%', '[', ']', '(', ')', '\\'} {
		classSafe[c] = true
	}
}

// ExtractCandidates tokenizes raw text into candidate strings: maximal runs
// of class-safe characters, with tokens carrying unbalanced arbitrary-value
// brackets rejected individually. The text's format (markup, script,
// markdown) is irrelevant; only the character-class table matters.
func ExtractCandidates(content []byte) []string {
	var candidates []string
	start := -1
	for i := 0; i <= len(content); i++ {
		if i < len(content) && classSafe[content[i]] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if token := content[start:i]; validCandidateToken(token) {
				candidates = append(candidates, string(token))
			}
			start = -1
		}
	}
	return candidates
}

// validCandidateToken rejects tokens that cannot be class names: no
// letters, or mismatched arbitrary-value brackets. Rejection is per-token;
// the rest of the file is unaffected.
func validCandidateToken(token []byte) bool {
	hasLetter := false
	depth := 0
	for _, c := range token {
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			hasLetter = true
		case c == '[':
			depth++
			if depth > 1 {
				return false
			}
		case c == ']':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return hasLetter && depth == 0
}
