package model

import (
	"fmt"
	"strings"
)

// Student represents a student and the course codes they registered for,
// in registration order.
type Student struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	RegisteredCourses []string `json:"registered_courses" yaml:"-"`
}

// NewStudent creates a student with no registrations.
func NewStudent(id, name string) *Student {
	return &Student{
		ID:                id,
		Name:              name,
		RegisteredCourses: []string{},
	}
}

// AddRegistration appends code. Duplicates are not checked here.
func (s *Student) AddRegistration(code string) {
	s.RegisteredCourses = append(s.RegisteredCourses, code)
}

// RemoveRegistration removes the first occurrence of code, if any.
func (s *Student) RemoveRegistration(code string) {
	for i, c := range s.RegisteredCourses {
		if strings.EqualFold(c, code) {
			s.RegisteredCourses = append(s.RegisteredCourses[:i], s.RegisteredCourses[i+1:]...)
			return
		}
	}
}

// IsRegistered reports whether code is in the registration list, ignoring case.
func (s *Student) IsRegistered(code string) bool {
	for _, c := range s.RegisteredCourses {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}

// Describe returns a one-line summary of the student.
func (s *Student) Describe() string {
	return fmt.Sprintf("Student ID: %s, Name: %s, Registered Courses: [%s]",
		s.ID, s.Name, strings.Join(s.RegisteredCourses, ", "))
}

// CreateStudentRequest is the payload for adding a student.
type CreateStudentRequest struct {
	ID   string `yaml:"id" validate:"required,max=20"`
	Name string `yaml:"name" validate:"required,min=1,max=100"`
}
