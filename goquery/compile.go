package goquery

import (
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/jobclip"
)

// CompileRegistry checks that every locator in the registry, including the
// main content landmarks, is a valid CSS selector. goquery silently matches
// nothing for a malformed selector, so this is run once at startup.
func CompileRegistry(registry *jobclip.Registry) error {
	for _, p := range registry.Profiles() {
		for _, field := range jobclip.Fields {
			for _, locator := range p.Locators(field) {
				if _, err := cascadia.Compile(locator); err != nil {
					return jobclip.Errorf(jobclip.EINVALID, "site profile %q: invalid %s locator %q: %v", p.Site, field, locator, err)
				}
			}
		}
	}
	for _, locator := range jobclip.MainContentLocators() {
		if _, err := cascadia.Compile(locator); err != nil {
			return jobclip.Errorf(jobclip.EINVALID, "invalid main content locator %q: %v", locator, err)
		}
	}
	return nil
}
