// authors.go
package main

import (
	"sort"
	"strings"

	"github.com/Silu00/sales-dashboard/domain/models"
)

// authorSet canonicalizes a comma-separated author string into a sorted,
// order-independent list. nil means the field is missing; an empty non-nil
// slice is still a valid identity, distinct from missing.
func authorSet(author string) []string {
	if author == MissingText {
		return nil
	}
	parts := strings.Split(author, ",")
	authors := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			authors = append(authors, part)
		}
	}
	sort.Strings(authors)
	return authors
}

// authorSetKey renders the canonical identity. Two catalog records denote
// the same author set only when their keys are equal.
func authorSetKey(set []string) string {
	return strings.Join(set, ", ")
}

// uniqueAuthorSets counts distinct non-missing author identities.
func uniqueAuthorSets(books []models.Book) int {
	seen := map[string]bool{}
	for _, b := range books {
		if b.AuthorSet == nil {
			continue
		}
		seen[authorSetKey(b.AuthorSet)] = true
	}
	return len(seen)
}
