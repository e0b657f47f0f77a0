package store

import (
	"sync"

	"github.com/Yash-4120/applyflow/internal/models"
)

// ColumnStore holds the live set of board columns. Validation of a job's
// columnId goes through Exists, so columns added at runtime become valid
// targets immediately.
type ColumnStore struct {
	mu      sync.RWMutex
	columns []models.Column
}

func NewColumnStore(seed ...models.Column) *ColumnStore {
	s := &ColumnStore{columns: make([]models.Column, len(seed))}
	copy(s.columns, seed)
	return s
}

// List returns a copy of every column in board order.
func (s *ColumnStore) List() []models.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Exists reports whether a column with the given id is on the board.
func (s *ColumnStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.columns {
		if c.ID == id {
			return true
		}
	}
	return false
}

// IDs returns the current column ids in board order.
func (s *ColumnStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.columns))
	for i, c := range s.columns {
		out[i] = c.ID
	}
	return out
}

// Add appends a column. Duplicate ids are rejected.
func (s *ColumnStore) Add(column models.Column) error {
	if column.ID == "" || column.Name == "" {
		return &ValidationError{Message: "Column id and name are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.columns {
		if c.ID == column.ID {
			return &ValidationError{Message: "Column " + column.ID + " already exists"}
		}
	}
	s.columns = append(s.columns, column)
	return nil
}
