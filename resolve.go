// resolve.go
package main

import (
	"strings"

	"github.com/pivolan/go_utils"

	"github.com/Silu00/sales-dashboard/domain/models"
)

// invalidKeyParts must never participate in a blocking key: an empty or
// null-ish component would merge every record lacking that attribute.
var invalidKeyParts = []string{"", "nan", "null", "none"}

type blockingPass struct {
	name string
	keys func(u models.User) (string, string)
}

// blockingPasses объявляет три комбинации ключей блокировки; совпадение по
// любой из них объединяет записи в одну группу.
var blockingPasses = []blockingPass{
	{"name+address", func(u models.User) (string, string) { return u.NameClean, u.AddressClean }},
	{"name+phone", func(u models.User) (string, string) { return u.NameClean, u.PhoneClean }},
	{"address+phone", func(u models.User) (string, string) { return u.AddressClean, u.PhoneClean }},
}

func validKeyPart(s string) bool {
	return !go_utils.InArray(strings.ToLower(s), invalidKeyParts)
}

// dropExactDuplicates removes rows identical across all source columns,
// keeping the first occurrence.
func dropExactDuplicates(users []models.User) []models.User {
	seen := map[[4]string]bool{}
	result := make([]models.User, 0, len(users))
	for _, u := range users {
		key := [4]string{u.ID, u.Name, u.Address, u.Phone}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, u)
	}
	return result
}

// resolveUsers partitions users into groups believed to denote one real
// person: the equivalence closure over all three blocking passes.
func resolveUsers(users []models.User) *DisjointSet {
	return resolveUsersPasses(users, blockingPasses)
}

func resolveUsersPasses(users []models.User, passes []blockingPass) *DisjointSet {
	set := NewDisjointSet(len(users))
	for _, pass := range passes {
		groups := map[[2]string][]int{}
		var order [][2]string
		for i, u := range users {
			a, b := pass.keys(u)
			if !validKeyPart(a) || !validKeyPart(b) {
				continue
			}
			key := [2]string{a, b}
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], i)
		}
		for _, key := range order {
			indices := groups[key]
			for _, other := range indices[1:] {
				set.Union(indices[0], other)
			}
		}
	}
	return set
}

// groupLookup maps raw customer ids to their group root index.
func groupLookup(users []models.User, set *DisjointSet) map[string]int {
	lookup := make(map[string]int, len(users))
	for i, u := range users {
		lookup[u.ID] = set.Find(i)
	}
	return lookup
}
