package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuanying/fb2rename/internal/config"
	"github.com/yuanying/fb2rename/internal/discover"
	"github.com/yuanying/fb2rename/internal/pattern"
	"github.com/yuanying/fb2rename/internal/renamer"
)

var defaultExtensions = []string{"fb2", "fb2.zip"}

// errFilesFailed makes the process exit non-zero after a batch with
// per-file errors.
var errFilesFailed = errors.New("some files could not be renamed")

// cliOptions is everything a run needs, after flags and config are merged.
type cliOptions struct {
	Template  string
	Discover  discover.Options
	OutputDir string
	DryRun    bool
	Logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fb2rename [files or directories...]",
		Short: "Rename FictionBook files using their metadata",
		Long: `fb2rename renames FB2 books (.fb2 and .fb2.zip) to names built from
a template that references fields of the book description, e.g.

  fb2rename -f "%authors#L #f.% - %title%" ~/Books

Fields: authors, title, date, year, sequence, seq_name, seq_number,
genre, oldname, lang, lang_src, publisher, isbn, bookname, city, version.
The authors field takes a name format after its name: #F #M #L insert the
first, middle and last name, #f #m #l their first letter.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "", "Rename template (overrides --template)")
	flags.StringP("template", "t", pattern.Default, "Named template: simple_flat, flat, sequence, sequence_flat, default")
	flags.BoolP("dry-run", "d", false, "Show new names without renaming")
	flags.BoolP("recursive", "r", false, "Scan directories recursively")
	flags.StringP("output", "o", "", "Output directory (default: directory of each file)")
	flags.StringSliceP("ext", "e", defaultExtensions, "File extensions to process")
	flags.StringSlice("exclude", nil, "Glob patterns of files or directories to skip")
	flags.String("config", "", "Config file (default: "+config.ConfigFileName+" in the user config directory)")
	flags.Bool("list-templates", false, "Print the named templates and exit")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text, json")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list-templates"); list {
		presets, err := loadPresets(cmd)
		if err != nil {
			return err
		}
		for _, name := range presets.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", name, presets[name])
		}
		return nil
	}

	opts, err := readCLIOptions(cmd, args)
	if err != nil {
		return err
	}

	files, err := discover.Discover(opts.Discover)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		opts.Logger.Info("no files found", "extensions", opts.Discover.Extensions)
		return nil
	}
	opts.Logger.Debug("discovered files", "count", len(files), "template", opts.Template)

	p := renamer.NewPipeline(renamer.Options{
		Template:  opts.Template,
		OutputDir: opts.OutputDir,
		DryRun:    opts.DryRun,
		Logger:    opts.Logger,
	})
	report := p.Run(files)

	printReport(cmd.OutOrStdout(), report)
	if len(report.Failed()) > 0 {
		return errFilesFailed
	}
	return nil
}

// readCLIOptions validates flags, merges them with the config file and
// sorts positional arguments into files and directories.
func readCLIOptions(cmd *cobra.Command, args []string) (*cliOptions, error) {
	flags := cmd.Flags()

	logLevel, _ := flags.GetString("log-level")
	if !validLogLevel(logLevel) {
		return nil, fmt.Errorf("--log-level must be one of debug, info, warn, error: %q", logLevel)
	}
	logFormat, _ := flags.GetString("log-format")
	if !validLogFormat(logFormat) {
		return nil, fmt.Errorf("--log-format must be text or json: %q", logFormat)
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		logLevel = "debug"
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	tmpl, err := selectTemplate(cmd, cfg)
	if err != nil {
		return nil, err
	}

	exts, _ := flags.GetStringSlice("ext")
	if !flags.Changed("ext") && len(cfg.Extensions) > 0 {
		exts = cfg.Extensions
	}
	recursive, _ := flags.GetBool("recursive")
	if !flags.Changed("recursive") {
		recursive = cfg.Recursive
	}
	exclude, _ := flags.GetStringSlice("exclude")

	opts := &cliOptions{
		Template: tmpl,
		Discover: discover.Options{
			Extensions: exts,
			Recursive:  recursive,
			Exclude:    append(append([]string{}, cfg.Exclude...), exclude...),
		},
		Logger: buildLogger(cmd.ErrOrStderr(), logLevel, logFormat),
	}
	opts.OutputDir, _ = flags.GetString("output")
	opts.DryRun, _ = flags.GetBool("dry-run")

	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			opts.Discover.Roots = append(opts.Discover.Roots, arg)
		} else {
			opts.Discover.Files = append(opts.Discover.Files, arg)
		}
	}

	return opts, nil
}

// selectTemplate picks --format, then --template, then the config default.
func selectTemplate(cmd *cobra.Command, cfg *config.Config) (string, error) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		format, _ := flags.GetString("format")
		if format == "" {
			return "", fmt.Errorf("--format must not be empty")
		}
		return format, nil
	}

	presets := pattern.DefaultPresets()
	presets.Merge(cfg.Templates)

	name, _ := flags.GetString("template")
	if !flags.Changed("template") && cfg.Template != "" {
		name = cfg.Template
	}
	tmpl, err := presets.Lookup(name)
	if err != nil {
		return "", fmt.Errorf("--template: %w (available: %s)", err, strings.Join(presets.Names(), ", "))
	}
	return tmpl, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.LoadDefault()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("--config: %w", err)
	}
	return cfg, nil
}

func loadPresets(cmd *cobra.Command) (pattern.Presets, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	presets := pattern.DefaultPresets()
	presets.Merge(cfg.Templates)
	return presets, nil
}

// printReport writes "old => new" for every resolved name, then the files
// that failed.
func printReport(w io.Writer, report *renamer.Report) {
	for _, res := range report.Results {
		if res.Target == "" || res.Status == renamer.StatusUnchanged {
			continue
		}
		fmt.Fprintf(w, "%s => %s\n", res.Source, res.Target)
	}

	failed := report.Failed()
	if report.DryRun {
		fmt.Fprintf(w, "Planned: %d, unchanged: %d, errors: %d\n",
			report.Count(renamer.StatusPlanned), report.Count(renamer.StatusUnchanged), len(failed))
	} else {
		fmt.Fprintf(w, "Renamed: %d, unchanged: %d, errors: %d\n",
			report.Count(renamer.StatusRenamed), report.Count(renamer.StatusUnchanged), len(failed))
	}
	for _, res := range failed {
		fmt.Fprintf(w, "  %v\n", res.Err)
	}
}

func buildLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func validLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func validLogFormat(format string) bool {
	switch strings.ToLower(format) {
	case "text", "json":
		return true
	}
	return false
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
