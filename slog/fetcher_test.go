package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/jobclip"
	"github.com/fwojciec/jobclip/mock"
	jcslog "github.com/fwojciec/jobclip/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with final URL, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*jobclip.Snapshot, error) {
				return &jobclip.Snapshot{URL: "https://example.com/jobs/2", HTML: "<html>content</html>"}, nil
			},
		}

		fetcher := jcslog.NewLoggingFetcher(inner, logger)
		snapshot, err := fetcher.Fetch(context.Background(), "https://example.com/jobs/1")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", snapshot.HTML)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://example.com/jobs/1")
		assert.Contains(t, output, "final_url=https://example.com/jobs/2")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs fetch error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*jobclip.Snapshot, error) {
				return nil, errors.New("connection refused")
			},
		}

		_, err := jcslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://example.com/jobs/1")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, `err="connection refused"`)
		assert.NotContains(t, output, "bytes=")
	})

	t.Run("delegates close", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		err := jcslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler)).Close()

		require.NoError(t, err)
		assert.True(t, closed)
	})
}
