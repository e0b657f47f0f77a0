package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yash-4120/applyflow/internal/models"
)

func TestColumnStoreDefaults(t *testing.T) {
	s := NewColumnStore(DefaultColumns()...)

	assert.Equal(t, []string{"col-1", "col-2", "col-3", "col-4"}, s.IDs())
	assert.True(t, s.Exists("col-1"))
	assert.False(t, s.Exists("col-99"))
}

func TestColumnStoreAdd(t *testing.T) {
	s := NewColumnStore(DefaultColumns()...)

	require.NoError(t, s.Add(models.Column{ID: "col-99", Name: "OFFERS"}))
	assert.True(t, s.Exists("col-99"), "added columns become valid immediately")
	assert.Len(t, s.List(), 5)
}

func TestColumnStoreAddRejectsDuplicatesAndBlanks(t *testing.T) {
	s := NewColumnStore(DefaultColumns()...)

	var ve *ValidationError
	err := s.Add(models.Column{ID: "col-1", Name: "AGAIN"})
	require.ErrorAs(t, err, &ve)

	err = s.Add(models.Column{Name: "NO ID"})
	require.ErrorAs(t, err, &ve)

	err = s.Add(models.Column{ID: "col-5"})
	require.ErrorAs(t, err, &ve)
}
