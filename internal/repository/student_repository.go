package repository

import (
	"errors"
	"sort"

	"github.com/stemsi/registrar/internal/model"
)

var ErrNotFound = errors.New("record not found")

// StudentRepository holds students keyed by ID.
type StudentRepository struct {
	students map[string]*model.Student
}

// NewStudentRepository creates an empty StudentRepository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{students: make(map[string]*model.Student)}
}

// Upsert stores s under its ID, replacing any existing record.
// Reports whether a record was replaced.
func (r *StudentRepository) Upsert(s *model.Student) bool {
	_, existed := r.students[s.ID]
	r.students[s.ID] = s
	return existed
}

// GetByID retrieves a student by exact ID.
func (r *StudentRepository) GetByID(id string) (*model.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// List returns all students ordered by ID.
func (r *StudentRepository) List() []*model.Student {
	out := make([]*model.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
