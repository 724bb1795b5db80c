package models

import "strings"

const maxBranchSlug = 50

// BranchName derives a git branch name of the form <category>/<slug>.
// Returns "" when the title has no usable characters.
func BranchName(category Category, title string) string {
	slug := Slugify(title)
	if slug == "" {
		return ""
	}
	if category == "" {
		category = CategoryFeature
	}
	return string(category) + "/" + slug
}

// Slugify lowercases s and collapses every run of non-alphanumerics into one dash
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if len(out) > maxBranchSlug {
		out = strings.TrimRight(out[:maxBranchSlug], "-")
	}
	return out
}
