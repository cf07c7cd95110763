package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/jobclip"
	"github.com/fwojciec/jobclip/goquery"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.FindSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobclip.ErrorMessage(err))
		return err
	}

	// The project ID is required before any page is loaded.
	if c.Open && settings.ProjectID == "" {
		fmt.Fprintln(deps.Stderr, "error: save your project ID first with 'jobclip settings set --project-id <id>'")
		return jobclip.Errorf(jobclip.EINVALID, "project ID not set")
	}

	snapshot, err := c.snapshot(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	doc, err := goquery.NewDocument(snapshot)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobclip.ErrorMessage(err))
		return err
	}

	posting := deps.Extractor.Extract(doc)
	if err := posting.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobclip.ErrorMessage(err))
		return err
	}

	prompt := jobclip.FormatPrompt(posting, settings)

	if !c.Copy && !c.Open {
		fmt.Fprint(deps.Stdout, prompt)
		return nil
	}

	if err := deps.Clipboard.WriteText(prompt); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, jobclip.CopiedStatus(posting))

	if c.Open {
		if err := deps.Opener.OpenURL(jobclip.ProjectURL(settings.ProjectID)); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
			return err
		}
	}

	return nil
}

// snapshot loads the page from --file when given, otherwise fetches URL.
func (c *ExtractCmd) snapshot(deps *Dependencies) (*jobclip.Snapshot, error) {
	if c.File == "" {
		return deps.Fetcher.Fetch(deps.Ctx, c.URL)
	}

	html, err := os.ReadFile(c.File)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.File, err)
	}
	return &jobclip.Snapshot{URL: c.URL, HTML: string(html)}, nil
}

// errorText returns the message of application errors and the full text
// of infrastructure errors, which carry the useful detail.
func errorText(err error) string {
	if jobclip.ErrorCode(err) == jobclip.EINTERNAL {
		return err.Error()
	}
	return jobclip.ErrorMessage(err)
}
