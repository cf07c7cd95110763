package jobclip

import "slices"

// Site identifies the job board a profile is tailored to.
type Site string

// Known sites. SiteGeneric is the catch-all used for unrecognized hosts.
const (
	SiteGeneric  Site = "generic"
	SiteLinkedIn Site = "linkedin"
	SiteSeek     Site = "seek"
)

// Field names a logical piece of a job posting.
type Field string

// Posting fields extracted from a page.
const (
	FieldTitle       Field = "title"
	FieldCompany     Field = "company"
	FieldLocation    Field = "location"
	FieldDescription Field = "description"
)

// Fields lists all posting fields in extraction order.
var Fields = []Field{FieldTitle, FieldCompany, FieldLocation, FieldDescription}

// LocatorSet is a priority-ordered list of CSS selectors for one field,
// most specific first.
type LocatorSet []string

// SiteProfile bundles the extraction rules for one job board.
type SiteProfile struct {
	Site Site

	// Hosts are hostname fragments that select this profile by substring
	// match. The generic profile has none.
	Hosts []string

	Title       LocatorSet
	Company     LocatorSet
	Location    LocatorSet
	Description LocatorSet
}

// Locators returns the locator set configured for field.
// Returns nil for fields the profile does not define.
func (p SiteProfile) Locators(field Field) LocatorSet {
	switch field {
	case FieldTitle:
		return p.Title
	case FieldCompany:
		return p.Company
	case FieldLocation:
		return p.Location
	case FieldDescription:
		return p.Description
	}
	return nil
}

// Validate returns an error if the profile cannot be used for extraction.
func (p SiteProfile) Validate() error {
	if p.Site == "" {
		return Errorf(EINVALID, "site profile identifier required")
	}
	if len(p.Description) == 0 {
		return Errorf(EINVALID, "site profile %q: description locators required", p.Site)
	}
	for _, field := range Fields {
		for _, locator := range p.Locators(field) {
			if locator == "" {
				return Errorf(EINVALID, "site profile %q: empty %s locator", p.Site, field)
			}
		}
	}
	return nil
}

func (p SiteProfile) clone() SiteProfile {
	p.Hosts = slices.Clone(p.Hosts)
	p.Title = slices.Clone(p.Title)
	p.Company = slices.Clone(p.Company)
	p.Location = slices.Clone(p.Location)
	p.Description = slices.Clone(p.Description)
	return p
}
