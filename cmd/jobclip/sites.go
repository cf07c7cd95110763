package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/jobclip"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	for _, p := range deps.Registry.Profiles() {
		hosts := "*"
		if len(p.Hosts) > 0 {
			hosts = strings.Join(p.Hosts, ", ")
		}
		fmt.Fprintf(deps.Stdout, "%-10s %s\n", p.Site, hosts)

		if !c.Locators {
			continue
		}
		for _, field := range jobclip.Fields {
			locators := p.Locators(field)
			if len(locators) == 0 {
				continue
			}
			fmt.Fprintf(deps.Stdout, "  %-12s %s\n", field, strings.Join(locators, " | "))
		}
	}
	return nil
}
