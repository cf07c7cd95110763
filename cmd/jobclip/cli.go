package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/jobclip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Registry  *jobclip.Registry
	Extractor jobclip.Extractor
	Fetcher   jobclip.Fetcher
	Settings  jobclip.SettingsService
	Clipboard jobclip.Clipboard
	Opener    jobclip.URLOpener
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and extraction details to stderr"`

	Extract  ExtractCmd  `cmd:"" help:"Extract a job posting and build the assessment prompt"`
	Settings SettingsCmd `cmd:"" help:"Show or change saved settings"`
	Sites    SitesCmd    `cmd:"" help:"List supported job boards"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL     string        `arg:"" help:"Job posting URL"`
	File    string        `short:"f" type:"existingfile" help:"Read page HTML from a saved file; URL is used as its address"`
	Static  bool          `short:"s" help:"Fetch over plain HTTP instead of a headless browser"`
	Copy    bool          `short:"c" help:"Copy the prompt to the clipboard instead of printing it"`
	Open    bool          `short:"o" help:"Copy the prompt and open the saved chat project"`
	Timeout time.Duration `default:"30s" help:"Page load timeout"`
}

// SettingsCmd is the "settings" command group.
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" default:"1" help:"Show saved settings"`
	Set  SettingsSetCmd  `cmd:"" help:"Save settings"`
}

// SettingsShowCmd is the "settings show" subcommand.
type SettingsShowCmd struct{}

// SettingsSetCmd is the "settings set" subcommand.
type SettingsSetCmd struct {
	ProjectID    string `name:"project-id" help:"Chat project ID opened by 'extract --open'"`
	Email        string `help:"Email included in the CV contact details"`
	Phone        string `help:"Phone included in the CV contact details"`
	ClearContact bool   `help:"Remove the saved email and phone"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct {
	Locators bool `short:"l" help:"Show locators for each field"`
}
