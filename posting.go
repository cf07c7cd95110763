package jobclip

import "unicode/utf8"

// MinDescriptionLength is the shortest description a caller should accept as
// a successful extraction.
const MinDescriptionLength = 50

// Posting is the job posting extracted from a page. Empty strings denote
// fields that were not found.
type Posting struct {
	Site        Site   `json:"site"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	SourceURL   string `json:"sourceUrl"`
}

// DescriptionLength returns the description length in characters.
func (p *Posting) DescriptionLength() int {
	return utf8.RuneCountInString(p.Description)
}

// Validate returns EINSUFFICIENT if the description is too short to be a
// real job posting. Extraction itself never fails; this check is the
// caller's decision.
func (p *Posting) Validate() error {
	if p.DescriptionLength() < MinDescriptionLength {
		return Errorf(EINSUFFICIENT, "Could not find job description on this page")
	}
	return nil
}
