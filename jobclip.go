// Package jobclip extracts job postings from web pages and turns them into
// an assessment prompt ready to paste into a chat project.
//
// This package contains domain types, the site profile registry and the
// extraction engine following Ben Johnson's Standard Package Layout.
// Implementations that touch the outside world live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package jobclip
