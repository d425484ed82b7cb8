// Package discover collects the files a rename run operates on.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var ErrDiscoveryInput = errors.New("invalid discovery input")

// Options selects candidate files.
type Options struct {
	// Files are explicit file paths. They are filtered by extension like
	// every discovered file.
	Files []string

	// Extensions without the leading dot, e.g. "fb2" or "fb2.zip". An
	// empty list selects nothing.
	Extensions []string

	// Roots are directories to scan. When both Files and Roots are empty
	// the current working directory is scanned.
	Roots []string

	// Recursive scans the whole subtree of every root instead of its
	// immediate files.
	Recursive bool

	// Exclude holds doublestar patterns. A discovered file is skipped when
	// a pattern matches its slash separated path relative to the root, or
	// its base name.
	Exclude []string
}

// Discover returns the absolute, de-duplicated paths selected by opts in
// lexical order.
func Discover(opts Options) ([]string, error) {
	exts, err := normalizeExtensions(opts.Extensions)
	if err != nil {
		return nil, err
	}
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: bad exclude pattern %q", ErrDiscoveryInput, pattern)
		}
	}

	roots := opts.Roots
	if len(opts.Files) == 0 && len(roots) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		roots = []string{wd}
	}

	seen := make(map[string]struct{})
	add := func(p string) error {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		if hasExtension(abs, exts) {
			seen[abs] = struct{}{}
		}
		return nil
	}

	for _, f := range opts.Files {
		if err := add(f); err != nil {
			return nil, err
		}
	}

	for _, root := range roots {
		found, err := scanRoot(root, opts.Recursive, opts.Exclude)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			if err := add(f); err != nil {
				return nil, err
			}
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// scanRoot lists the regular files under root. Symlinks to files are
// followed; symlinks to directories below root are not.
func scanRoot(root string, recursive bool, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscoveryInput, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDiscoveryInput, root)
	}

	var files []string
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", root, err)
		}
		for _, e := range entries {
			path := filepath.Join(root, e.Name())
			if !isRegular(path, e) || excluded(e.Name(), exclude) {
				continue
			}
			files = append(files, path)
		}
		return files, nil
	}

	// WalkDir does not descend into a symlinked root.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscoveryInput, err)
	}

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(walkRoot, path)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			if rel != "." && excluded(filepath.ToSlash(rel), exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isRegular(path, d) {
			return nil
		}
		if excluded(filepath.ToSlash(rel), exclude) || excluded(d.Name(), exclude) {
			return nil
		}
		// Report paths under the root as given.
		files = append(files, filepath.Join(root, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

// isRegular reports whether the entry at path is a regular file, following a
// symlink.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func excluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// normalizeExtensions strips a leading dot and rejects empty extensions or
// ones containing path separators.
func normalizeExtensions(exts []string) ([]string, error) {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		e := strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if e == "" || strings.ContainsAny(e, `/\`) {
			return nil, fmt.Errorf("%w: bad extension %q", ErrDiscoveryInput, ext)
		}
		out = append(out, e)
	}
	return out, nil
}

// hasExtension reports whether the base name of path ends with "."+ext for
// one of exts. Multi-part extensions such as "fb2.zip" are matched as a
// whole, so "fb2" does not select "a.fb2.zip".
func hasExtension(path string, exts []string) bool {
	base := filepath.Base(path)
	for _, ext := range exts {
		if strings.HasSuffix(base, "."+ext) {
			return true
		}
	}
	return false
}
