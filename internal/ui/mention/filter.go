package mention

import (
	"strings"

	"mentionbox/internal/domain"
)

// Trigger starts a mention
const Trigger = "@"

// SearchTerm returns the lower-cased text between the first trigger and the
// next one, if any. ok is false when the text has no trigger at all.
func SearchTerm(text string) (term string, ok bool) {
	_, after, found := strings.Cut(text, Trigger)
	if !found {
		return "", false
	}
	term, _, _ = strings.Cut(after, Trigger)
	return strings.ToLower(term), true
}

// Matches reports whether term is a substring of c's first or last name,
// ignoring case. term must already be lower-case.
func Matches(c domain.Candidate, term string) bool {
	return strings.Contains(strings.ToLower(c.FirstName), term) ||
		strings.Contains(strings.ToLower(c.LastName), term)
}

// Filter keeps the candidates matching term in dataset order
func Filter(cands []domain.Candidate, term string) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(cands))
	for _, c := range cands {
		if Matches(c, term) {
			out = append(out, c)
		}
	}
	return out
}

// MentionText is the string handed to the host on commit
func MentionText(c domain.Candidate) string {
	return Trigger + c.FirstName + " " + c.LastName
}

// Splice keeps everything before the first trigger and replaces the rest
// with the mention plus a trailing space
func Splice(text string, c domain.Candidate) string {
	prefix, _, _ := strings.Cut(text, Trigger)
	return prefix + MentionText(c) + " "
}
