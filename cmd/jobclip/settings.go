package main

import (
	"fmt"

	"github.com/fwojciec/jobclip"
)

// Run executes the settings show command.
func (c *SettingsShowCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.FindSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobclip.ErrorMessage(err))
		return err
	}

	if settings.ProjectID == "" {
		fmt.Fprintln(deps.Stdout, "No project ID saved. Use 'jobclip settings set --project-id <id>' to save one.")
	} else {
		fmt.Fprintf(deps.Stdout, "Project ID: %s\n", settings.ProjectID)
		fmt.Fprintf(deps.Stdout, "Project URL: %s\n", jobclip.ProjectURL(settings.ProjectID))
	}
	fmt.Fprintf(deps.Stdout, "Email: %s\n", orNone(settings.Email))
	fmt.Fprintf(deps.Stdout, "Phone: %s\n", orNone(settings.Phone))
	return nil
}

// Run executes the settings set command. Flags left empty keep their
// saved values.
func (c *SettingsSetCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.FindSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobclip.ErrorMessage(err))
		return err
	}

	if c.ClearContact {
		settings.Email = ""
		settings.Phone = ""
	}
	if c.ProjectID != "" {
		settings.ProjectID = c.ProjectID
	}
	if c.Email != "" {
		settings.Email = c.Email
	}
	if c.Phone != "" {
		settings.Phone = c.Phone
	}

	if err := deps.Settings.SaveSettings(deps.Ctx, settings); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "✓ Settings saved!")
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
