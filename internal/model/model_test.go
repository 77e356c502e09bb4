package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	c, err := NewCourse("CSE101", "Introduction to Computer Science", "Fundamentals of programming", 30, "Mon/Wed/Fri 10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Enrolled)
	assert.Equal(t, 30, c.AvailableSlots())

	_, err = NewCourse("BAD1", "Bad", "", -1, "")
	require.ErrorIs(t, err, ErrNegativeCapacity)

	zero, err := NewCourse("ZERO", "Closed", "", 0, "")
	require.NoError(t, err)
	assert.Equal(t, 0, zero.AvailableSlots())
}

func TestCourse_EnrollAndDropKeepBounds(t *testing.T) {
	c, err := NewCourse("PHY301", "Modern Physics", "", 2, "")
	require.NoError(t, err)

	require.ErrorIs(t, c.Drop(), ErrNothingEnrolled)
	assert.Equal(t, 0, c.Enrolled)

	require.NoError(t, c.Enroll())
	require.NoError(t, c.Enroll())
	assert.Equal(t, 0, c.AvailableSlots())

	require.ErrorIs(t, c.Enroll(), ErrNoSlots)
	assert.Equal(t, 2, c.Enrolled)

	require.NoError(t, c.Drop())
	assert.Equal(t, 1, c.Enrolled)
	assert.Equal(t, c.Capacity-c.Enrolled, c.AvailableSlots())
}

func TestCourse_MatchesCodeIgnoresCase(t *testing.T) {
	c := &Course{Code: "CSE101"}
	assert.True(t, c.MatchesCode("cse101"))
	assert.True(t, c.MatchesCode("CsE101"))
	assert.False(t, c.MatchesCode("CSE102"))
}

func TestCourse_Describe(t *testing.T) {
	c, err := NewCourse("MAT201", "Calculus I", "Limits, derivatives, and integrals", 25, "Tue/Thu 9:00 AM")
	require.NoError(t, err)
	require.NoError(t, c.Enroll())

	assert.Equal(t,
		"Course Code: MAT201, Title: Calculus I, Description: Limits, derivatives, and integrals, Capacity: 25, Schedule: Tue/Thu 9:00 AM, Enrolled Students: 1/25",
		c.Describe())
}

func TestStudent_Registrations(t *testing.T) {
	s := NewStudent("S001", "Alice")
	assert.Empty(t, s.RegisteredCourses)

	s.AddRegistration("CSE101")
	s.AddRegistration("MAT201")
	s.AddRegistration("CSE101")
	assert.Equal(t, []string{"CSE101", "MAT201", "CSE101"}, s.RegisteredCourses)

	s.RemoveRegistration("cse101")
	assert.Equal(t, []string{"MAT201", "CSE101"}, s.RegisteredCourses)
	assert.True(t, s.IsRegistered("CSE101"))

	s.RemoveRegistration("PHY301")
	assert.Equal(t, []string{"MAT201", "CSE101"}, s.RegisteredCourses)
	assert.False(t, s.IsRegistered("PHY301"))
}

func TestStudent_Describe(t *testing.T) {
	s := NewStudent("S002", "Bob")
	assert.Equal(t, "Student ID: S002, Name: Bob, Registered Courses: []", s.Describe())

	s.AddRegistration("CSE101")
	s.AddRegistration("PHY301")
	assert.Equal(t, "Student ID: S002, Name: Bob, Registered Courses: [CSE101, PHY301]", s.Describe())
}
