package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Silu00/sales-dashboard/domain/models"
)

func TestAuthorSetOrderIndependent(t *testing.T) {
	assert.Equal(t, authorSet("Doe, Smith"), authorSet("Smith, Doe"))
	assert.Equal(t, authorSetKey(authorSet("Doe,Smith")), authorSetKey(authorSet(" Smith ,  Doe ")))
	assert.Equal(t, []string{"Doe", "Smith"}, authorSet("Smith, Doe"))
}

func TestAuthorSetMissing(t *testing.T) {
	assert.Nil(t, authorSet(MissingText))
	// a field that splits to nothing is still a valid (empty) identity,
	// distinct from missing
	assert.NotNil(t, authorSet(","))
	assert.Len(t, authorSet(","), 0)
}

func TestUniqueAuthorSets(t *testing.T) {
	books := normalizeBooks([]models.Book{
		{ID: "1", Author: "A, B"},
		{ID: "2", Author: "B, A"},
		{ID: "3", Author: "C"},
		{ID: "4", Author: "NULL"},
	})
	assert.Equal(t, 2, uniqueAuthorSets(books))
}
