package jobclip

import (
	"fmt"
	"math"
	"strings"
)

// ProjectBaseURL is the address prefix of a chat project.
const ProjectBaseURL = "https://claude.ai/project/"

// contactPlaceholder is replaced by Settings.ContactDetails in AssessmentPrompt.
const contactPlaceholder = "{{CONTACT_DETAILS}}"

// AssessmentPrompt is prepended to every extracted posting.
const AssessmentPrompt = `Assess this job opportunity against my background:

**INITIAL SCREENING (always provide):**
1. **Match Score**: Give a percentage (0-100%) and 1-2 sentence explanation
2. **Quick Decision**: APPLY / MAYBE / SKIP - with brief reason
3. **Red Flags**: Any immediate concerns (or "None")

**DETAILED ANALYSIS (only if Match Score ≥ 60%):**
4. **Key Strengths**: Top 3-5 relevant qualifications I have
5. **Gaps**: Missing requirements and whether they're deal-breakers
6. **Compensation**: Expected salary range
7. **Application Angle**: Strategy for cover letter/CV focus

**NEXT STEPS (only if recommending APPLY):**
8. Offer to create tailored CV (1.6-2.1 pages, Google Doc format) and cover letter
9. Wait for my confirmation before proceeding
10. When creating CV, include contact details at the top: {{CONTACT_DETAILS}}
11. After creating documents:
    - CRITICAL: Re-read your entire output to verify it sounds natural and professional
    - Remove any AI-sounding phrases, generic fluff, or obvious template language
    - Ensure all achievements are specific and quantified where possible
    - Check that the tone is confident but authentic
    - Confirm: "✓ CV is between 1.6-2.1 pages in Google Doc format and reviewed for quality"

---

**JOB POSTING:**

`

// FormatPrompt renders the assessment prompt for a posting. Empty posting
// fields are omitted from the header block.
func FormatPrompt(p *Posting, s *Settings) string {
	var b strings.Builder
	b.WriteString(strings.Replace(AssessmentPrompt, contactPlaceholder, s.ContactDetails(), 1))

	header := []struct{ label, value string }{
		{"Title", p.Title},
		{"Company", p.Company},
		{"Location", p.Location},
		{"URL", p.SourceURL},
	}
	for _, h := range header {
		if h.value != "" {
			fmt.Fprintf(&b, "**%s:** %s\n", h.label, h.value)
		}
	}

	b.WriteString("\n---\n\n")
	b.WriteString(p.Description)
	return b.String()
}

// ProjectURL returns the address of the chat project with the given ID.
func ProjectURL(projectID string) string {
	return ProjectBaseURL + projectID
}

// CopiedStatus returns the confirmation shown after a prompt is copied.
func CopiedStatus(p *Posting) string {
	k := math.Round(float64(p.DescriptionLength()) / 1000)
	return fmt.Sprintf("✓ Copied! %dk characters ready to paste.", int(k))
}
