package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/jobclip"
	main "github.com/fwojciec/jobclip/cmd/jobclip"
	"github.com/fwojciec/jobclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seekHTML = `<!DOCTYPE html>
<html>
<body>
<h1 data-automation="job-detail-title">Data Engineer</h1>
<span data-automation="advertiser-name">Widgets Pty Ltd</span>
<span data-automation="job-detail-location">Melbourne VIC</span>
<div data-automation="jobAdDetails">` + strings.Repeat("Design and deliver data pipelines. ", 10) + `</div>
</body>
</html>`

type extractFixture struct {
	deps    *main.Dependencies
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	copied  *string
	opened  *string
	fetched *string
}

func newExtractFixture(settings *jobclip.Settings, html string) *extractFixture {
	f := &extractFixture{
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		copied:  new(string),
		opened:  new(string),
		fetched: new(string),
	}
	f.deps = &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    f.stdout,
		Stderr:    f.stderr,
		Registry:  jobclip.DefaultRegistry(),
		Extractor: jobclip.NewEngine(jobclip.DefaultRegistry()),
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*jobclip.Snapshot, error) {
				*f.fetched = url
				return &jobclip.Snapshot{URL: url, HTML: html}, nil
			},
		},
		Settings: &mock.SettingsService{
			FindSettingsFn: func(ctx context.Context) (*jobclip.Settings, error) {
				return settings, nil
			},
		},
		Clipboard: &mock.Clipboard{
			WriteTextFn: func(text string) error {
				*f.copied = text
				return nil
			},
		},
		Opener: &mock.URLOpener{
			OpenURLFn: func(url string) error {
				*f.opened = url
				return nil
			},
		},
	}
	return f
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	const jobURL = "https://www.seek.com.au/job/75000000"

	t.Run("prints prompt to stdout", func(t *testing.T) {
		t.Parallel()

		f := newExtractFixture(&jobclip.Settings{Email: "me@example.com"}, seekHTML)
		cmd := &main.ExtractCmd{URL: jobURL}

		err := cmd.Run(f.deps)

		require.NoError(t, err)
		assert.Equal(t, jobURL, *f.fetched)
		output := f.stdout.String()
		assert.Contains(t, output, "at the top: Email: me@example.com\n")
		assert.Contains(t, output, "**Title:** Data Engineer\n")
		assert.Contains(t, output, "**Company:** Widgets Pty Ltd\n")
		assert.Contains(t, output, "**Location:** Melbourne VIC\n")
		assert.Contains(t, output, "**URL:** "+jobURL+"\n")
		assert.True(t, strings.HasSuffix(output, "Design and deliver data pipelines."))
		assert.Empty(t, *f.copied)
		assert.Empty(t, f.stderr.String())
	})

	t.Run("copies prompt and reports size", func(t *testing.T) {
		t.Parallel()

		f := newExtractFixture(&jobclip.Settings{}, seekHTML)
		cmd := &main.ExtractCmd{URL: jobURL, Copy: true}

		err := cmd.Run(f.deps)

		require.NoError(t, err)
		assert.Contains(t, *f.copied, "**Title:** Data Engineer\n")
		assert.Equal(t, "✓ Copied! 0k characters ready to paste.\n", f.stdout.String())
		assert.Empty(t, *f.opened)
	})

	t.Run("copies and opens project", func(t *testing.T) {
		t.Parallel()

		f := newExtractFixture(&jobclip.Settings{ProjectID: "proj-1"}, seekHTML)
		cmd := &main.ExtractCmd{URL: jobURL, Open: true}

		err := cmd.Run(f.deps)

		require.NoError(t, err)
		assert.NotEmpty(t, *f.copied)
		assert.Equal(t, "https://claude.ai/project/proj-1", *f.opened)
	})

	t.Run("refuses to open without project ID before fetching", func(t *testing.T) {
		t.Parallel()

		f := newExtractFixture(&jobclip.Settings{}, seekHTML)
		cmd := &main.ExtractCmd{URL: jobURL, Open: true}

		err := cmd.Run(f.deps)

		require.Error(t, err)
		assert.Equal(t, jobclip.EINVALID, jobclip.ErrorCode(err))
		assert.Contains(t, f.stderr.String(), "project ID")
		assert.Empty(t, *f.fetched)
		assert.Empty(t, *f.copied)
	})

	t.Run("fails with insufficient content", func(t *testing.T) {
		t.Parallel()

		f := newExtractFixture(&jobclip.Settings{ProjectID: "proj-1"}, `<html><body><p>Sign in</p></body></html>`)
		cmd := &main.ExtractCmd{URL: "https://unknown.example.com/job", Open: true}

		err := cmd.Run(f.deps)

		require.Error(t, err)
		assert.Equal(t, jobclip.EINSUFFICIENT, jobclip.ErrorCode(err))
		assert.Contains(t, f.stderr.String(), "Could not find job description on this page")
		assert.Empty(t, *f.copied)
		assert.Empty(t, *f.opened)
	})

	t.Run("reports fetch error", func(t *testing.T) {
		t.Parallel()

		f := newExtractFixture(&jobclip.Settings{}, "")
		f.deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*jobclip.Snapshot, error) {
				return nil, errors.New("HTTP 403 for " + url)
			},
		}
		cmd := &main.ExtractCmd{URL: jobURL}

		err := cmd.Run(f.deps)

		require.Error(t, err)
		assert.Contains(t, f.stderr.String(), "HTTP 403")
	})

	t.Run("reports clipboard error without opening project", func(t *testing.T) {
		t.Parallel()

		f := newExtractFixture(&jobclip.Settings{ProjectID: "proj-1"}, seekHTML)
		f.deps.Clipboard = &mock.Clipboard{
			WriteTextFn: func(text string) error {
				return errors.New("no clipboard")
			},
		}
		cmd := &main.ExtractCmd{URL: jobURL, Open: true}

		err := cmd.Run(f.deps)

		require.Error(t, err)
		assert.Contains(t, f.stderr.String(), "no clipboard")
		assert.Empty(t, *f.opened)
	})

	t.Run("reads page from file without fetching", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "job.html")
		require.NoError(t, os.WriteFile(path, []byte(seekHTML), 0o644))

		f := newExtractFixture(&jobclip.Settings{}, "")
		cmd := &main.ExtractCmd{URL: jobURL, File: path}

		err := cmd.Run(f.deps)

		require.NoError(t, err)
		assert.Empty(t, *f.fetched)
		assert.Contains(t, f.stdout.String(), "**Title:** Data Engineer\n")
	})

	t.Run("rejects relative URL", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "job.html")
		require.NoError(t, os.WriteFile(path, []byte(seekHTML), 0o644))

		f := newExtractFixture(&jobclip.Settings{}, "")
		cmd := &main.ExtractCmd{URL: "job.html", File: path}

		err := cmd.Run(f.deps)

		assert.Equal(t, jobclip.EINVALID, jobclip.ErrorCode(err))
	})
}
