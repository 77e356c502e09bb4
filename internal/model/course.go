package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNegativeCapacity = errors.New("course capacity must not be negative")
	ErrNoSlots          = errors.New("course has no available slots")
	ErrNothingEnrolled  = errors.New("course has no enrolled students")
)

// Course represents a catalog offering with a fixed capacity.
type Course struct {
	Code        string `json:"code" yaml:"code"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Capacity    int    `json:"capacity" yaml:"capacity"`
	Schedule    string `json:"schedule" yaml:"schedule"`
	Enrolled    int    `json:"enrolled" yaml:"-"`
}

// NewCourse creates a course with no enrolled students.
func NewCourse(code, title, description string, capacity int, schedule string) (*Course, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	return &Course{
		Code:        code,
		Title:       title,
		Description: description,
		Capacity:    capacity,
		Schedule:    schedule,
	}, nil
}

// AvailableSlots returns capacity minus enrolled students.
func (c *Course) AvailableSlots() int {
	return c.Capacity - c.Enrolled
}

// MatchesCode reports whether code identifies this course, ignoring case.
func (c *Course) MatchesCode(code string) bool {
	return strings.EqualFold(c.Code, code)
}

// Enroll takes one slot. The counter is left untouched when the course is full.
func (c *Course) Enroll() error {
	if c.AvailableSlots() <= 0 {
		return ErrNoSlots
	}
	c.Enrolled++
	return nil
}

// Drop releases one slot. The counter never goes below zero.
func (c *Course) Drop() error {
	if c.Enrolled <= 0 {
		return ErrNothingEnrolled
	}
	c.Enrolled--
	return nil
}

// Describe returns a one-line summary of the course.
func (c *Course) Describe() string {
	return fmt.Sprintf("Course Code: %s, Title: %s, Description: %s, Capacity: %d, Schedule: %s, Enrolled Students: %d/%d",
		c.Code, c.Title, c.Description, c.Capacity, c.Schedule, c.Enrolled, c.Capacity)
}

// CreateCourseRequest is the payload for adding a course to the catalog.
type CreateCourseRequest struct {
	Code        string `yaml:"code" validate:"required,max=20"`
	Title       string `yaml:"title" validate:"required,max=200"`
	Description string `yaml:"description" validate:"max=1000"`
	Capacity    int    `yaml:"capacity"`
	Schedule    string `yaml:"schedule" validate:"max=100"`
}
