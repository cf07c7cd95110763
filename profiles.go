package jobclip

// LinkedInProfile returns the profile for LinkedIn job view pages, both the
// current "job-details" top card and the older unified top card.
func LinkedInProfile() SiteProfile { return linkedInProfile.clone() }

// SeekProfile returns the profile for SEEK job ads, which tag content with
// data-automation attributes.
func SeekProfile() SiteProfile { return seekProfile.clone() }

// GenericProfile returns the profile used for unrecognized hosts. Its
// locators match class name fragments common to job boards and trade
// precision for coverage.
func GenericProfile() SiteProfile { return genericProfile.clone() }

var linkedInProfile = SiteProfile{
	Site:  SiteLinkedIn,
	Hosts: []string{"linkedin.com"},
	Title: LocatorSet{
		".job-details-jobs-unified-top-card__job-title",
		".jobs-unified-top-card__job-title",
	},
	Company: LocatorSet{
		".job-details-jobs-unified-top-card__company-name",
		".jobs-unified-top-card__company-name",
	},
	Location: LocatorSet{
		".job-details-jobs-unified-top-card__bullet",
		".jobs-unified-top-card__bullet",
	},
	Description: LocatorSet{
		".jobs-description-content__text",
		".jobs-description",
		".jobs-box__html-content",
	},
}

var seekProfile = SiteProfile{
	Site:        SiteSeek,
	Hosts:       []string{"seek.com"},
	Title:       LocatorSet{`h1[data-automation="job-detail-title"]`},
	Company:     LocatorSet{`span[data-automation="advertiser-name"]`},
	Location:    LocatorSet{`span[data-automation="job-detail-location"]`},
	Description: LocatorSet{`div[data-automation="jobAdDetails"]`},
}

var genericProfile = SiteProfile{
	Site: SiteGeneric,
	Title: LocatorSet{
		"h1",
		`[class*="job-title"]`,
		`[class*="jobTitle"]`,
	},
	Company: LocatorSet{
		`[class*="company"]`,
		`[class*="employer"]`,
	},
	Description: LocatorSet{
		`[class*="description"]`,
		`[class*="job-detail"]`,
		"main",
		"article",
	},
}
