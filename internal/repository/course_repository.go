package repository

import (
	"github.com/stemsi/registrar/internal/model"
)

// CourseRepository holds the course catalog in insertion order.
type CourseRepository struct {
	courses []*model.Course
}

// NewCourseRepository creates an empty CourseRepository.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{}
}

// Create appends a course. Codes are not checked for uniqueness;
// GetByCode returns the first match.
func (r *CourseRepository) Create(c *model.Course) {
	r.courses = append(r.courses, c)
}

// GetByCode scans the catalog for a course whose code matches, ignoring case.
// Returns ErrNotFound when nothing matches.
func (r *CourseRepository) GetByCode(code string) (*model.Course, error) {
	for _, c := range r.courses {
		if c.MatchesCode(code) {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// List returns all courses in insertion order.
func (r *CourseRepository) List() []*model.Course {
	out := make([]*model.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

// ListAvailable returns courses with at least one open slot, in insertion order.
func (r *CourseRepository) ListAvailable() []*model.Course {
	var out []*model.Course
	for _, c := range r.courses {
		if c.AvailableSlots() > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of catalog entries.
func (r *CourseRepository) Count() int {
	return len(r.courses)
}
