package projects

import (
	"fmt"
	"strings"
)

// Slugify derives a URL slug from a title: lowercase, strip everything but
// letters, digits, spaces and hyphens, turn space runs into single hyphens
// and collapse hyphen runs.
func Slugify(title string) string {
	s := strings.ToLower(title)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}
	s = b.String()

	s = strings.Join(strings.Fields(s), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// uniqueSlug reserves a slug inside doc, appending a numeric suffix when
// the base is already mapped to a different project. Creating two projects
// titled "My App" yields "my-app" and "my-app-2".
func uniqueSlug(doc *projectsDocument, base, ownID string) string {
	if base == "" {
		base = "project"
	}

	candidate := base
	for n := 2; ; n++ {
		holder, taken := doc.ProjectSlugs[candidate]
		if !taken || holder == ownID {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
