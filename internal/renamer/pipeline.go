// Package renamer resolves new names for book files and moves them.
package renamer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuanying/fb2rename/internal/fb2"
	"github.com/yuanying/fb2rename/internal/metadata"
	"github.com/yuanying/fb2rename/internal/pattern"
	"github.com/yuanying/fb2rename/internal/sanitize"
)

var (
	ErrEmptyResult  = errors.New("template resolved to an empty name")
	ErrRenameFailed = errors.New("rename failed")
)

// Options holds options for the rename pipeline.
type Options struct {
	// Template is the rename template, e.g. "%authors% - %title%".
	Template string

	// OutputDir receives the renamed files. Empty keeps every file in its
	// own directory.
	OutputDir string

	// DryRun resolves names without touching the filesystem.
	DryRun bool

	// Registry selects the document format. Nil means FB2 only.
	Registry *metadata.Registry

	Logger *slog.Logger
}

// Pipeline renames files one at a time. A failure is recorded against its
// file and never stops the batch.
type Pipeline struct {
	Options  Options
	template *pattern.Template
	registry *metadata.Registry
	logger   *slog.Logger
}

// NewPipeline creates a new rename pipeline.
func NewPipeline(opts Options) *Pipeline {
	registry := opts.Registry
	if registry == nil {
		registry = metadata.NewRegistry()
		fb2.Register(registry)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		Options:  opts,
		template: pattern.Parse(opts.Template),
		registry: registry,
		logger:   logger,
	}
}

// Run processes paths in order and reports the outcome for each.
func (p *Pipeline) Run(paths []string) *Report {
	report := &Report{DryRun: p.Options.DryRun}
	for _, path := range paths {
		res := p.process(path)
		switch {
		case res.Err != nil:
			p.logger.Warn("failed to rename", "path", res.Source, "target", res.Target, "error", res.Err)
		case res.Status == StatusUnchanged:
			p.logger.Debug("name unchanged", "path", res.Source)
		default:
			p.logger.Info(res.Status.String(), "path", res.Source, "target", res.Target)
		}
		report.add(res)
	}
	return report
}

func (p *Pipeline) process(path string) Result {
	res := Result{Source: path}

	target, err := p.Target(path)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	res.Target = target

	if samePath(path, target) {
		res.Status = StatusUnchanged
		return res
	}
	if p.Options.DryRun {
		res.Status = StatusPlanned
		return res
	}

	if err := move(path, target); err != nil {
		res.Status = StatusFailed
		res.Err = &FileError{Path: path, Err: err}
		return res
	}
	res.Status = StatusRenamed
	return res
}

// Target returns the path the file at path would be renamed to.
func (p *Pipeline) Target(path string) (string, error) {
	acc, err := p.registry.Open(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}

	resolved, err := p.template.Resolve(acc)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	p.logger.Debug("resolved template", "path", path, "template", p.template.String(), "name", resolved)

	if sanitize.Filename(resolved) == "" {
		return "", &FileError{Path: path, Err: ErrEmptyResult}
	}

	name := sanitize.Filename(resolved + acc.Extension())
	parts, err := splitName(name)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}

	dir := p.Options.OutputDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	return filepath.Join(append([]string{dir}, parts...)...), nil
}

// splitName splits a resolved name on the separators written in the
// template. Field values never contain separators at this point.
func splitName(name string) ([]string, error) {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		switch f {
		case "", ".":
			continue
		case "..":
			f = "_"
		}
		parts = append(parts, f)
	}
	if len(parts) == 0 {
		return nil, ErrEmptyResult
	}
	return parts, nil
}

// move renames source to target, creating missing parent directories.
// An existing target is never overwritten.
func move(source, target string) error {
	if ti, err := os.Lstat(target); err == nil {
		// Case-only renames on case-insensitive filesystems see the source.
		si, serr := os.Lstat(source)
		if serr != nil || !os.SameFile(si, ti) {
			return fmt.Errorf("%w: %s already exists", ErrRenameFailed, target)
		}
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrRenameFailed, err)
	}
	if err := os.Rename(source, target); err != nil {
		return fmt.Errorf("%w: %w", ErrRenameFailed, err)
	}
	return nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
