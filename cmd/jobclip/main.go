package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobclip"
	"github.com/fwojciec/jobclip/browser"
	"github.com/fwojciec/jobclip/clipboard"
	"github.com/fwojciec/jobclip/goquery"
	jchttp "github.com/fwojciec/jobclip/http"
	"github.com/fwojciec/jobclip/rod"
	jcslog "github.com/fwojciec/jobclip/slog"
	"github.com/fwojciec/jobclip/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Registry of site profiles used for extraction.
	Registry *jobclip.Registry

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SettingsService jobclip.SettingsService
	Clipboard       jobclip.Clipboard
	Opener          jobclip.URLOpener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		Registry:  jobclip.DefaultRegistry(),
		Clipboard: clipboard.NewClipboard(),
		Opener:    browser.NewOpener(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := goquery.CompileRegistry(m.Registry); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Registry:  m.Registry,
		Clipboard: m.Clipboard,
		Opener:    m.Opener,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobclip"),
		kong.Description("Extract job postings into an assessment prompt."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobclip --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cmd == "extract" || cmd == "settings" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set JOBCLIP_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SettingsService = jcslog.NewLoggingSettingsService(sqlite.NewSettingsService(m.DB), logger)
		deps.Settings = m.SettingsService
	}

	if cmd == "extract" {
		deps.Extractor = jcslog.NewLoggingExtractor(jobclip.NewEngine(m.Registry), logger)

		if cli.Extract.File == "" {
			fetcher, err := newFetcher(cli.Extract)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --static")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer fetcher.Close()
			deps.Fetcher = jcslog.NewLoggingFetcher(fetcher, logger)
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns a plain HTTP fetcher for --static and a headless
// browser otherwise.
func newFetcher(c ExtractCmd) (jobclip.Fetcher, error) {
	if c.Static {
		return jchttp.NewFetcher(jchttp.WithTimeout(c.Timeout)), nil
	}
	return rod.NewFetcher(rod.WithTimeout(c.Timeout))
}

func defaultDBPath() string {
	if path := os.Getenv("JOBCLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobclip.db"
	}
	dir := filepath.Join(home, ".jobclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jobclip.db")
}
