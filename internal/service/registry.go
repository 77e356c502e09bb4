package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/registrar/internal/model"
	"github.com/stemsi/registrar/internal/repository"
	"github.com/stemsi/registrar/internal/response"
	"github.com/stemsi/registrar/internal/validator"
)

// RegistryOptions tunes registration policy.
type RegistryOptions struct {
	// RejectDuplicateRegistration fails Register with ALREADY_REGISTERED when
	// the course is already in the student's list. Off by default, in which
	// case a student may hold the same course code more than once.
	RejectDuplicateRegistration bool
}

// Registry owns every course and student record and is the only place
// their state is mutated. It is not safe for concurrent use.
type Registry struct {
	courseRepo  *repository.CourseRepository
	studentRepo *repository.StudentRepository
	opts        RegistryOptions
	log         zerolog.Logger
}

// NewRegistry creates a new Registry.
func NewRegistry(
	courseRepo *repository.CourseRepository,
	studentRepo *repository.StudentRepository,
	opts RegistryOptions,
	log zerolog.Logger,
) *Registry {
	return &Registry{
		courseRepo:  courseRepo,
		studentRepo: studentRepo,
		opts:        opts,
		log:         log,
	}
}

// ─── Catalog ───────────────────────────────────────────────────────────

// AddCourse appends c to the catalog without checking for a duplicate code.
func (r *Registry) AddCourse(c *model.Course) {
	r.courseRepo.Create(c)
	r.log.Debug().Str("course_code", c.Code).Int("capacity", c.Capacity).Msg("Course added")
}

// AddStudent stores s, replacing any student with the same ID.
func (r *Registry) AddStudent(s *model.Student) {
	if replaced := r.studentRepo.Upsert(s); replaced {
		r.log.Warn().Str("student_id", s.ID).Msg("Student record replaced")
		return
	}
	r.log.Debug().Str("student_id", s.ID).Msg("Student added")
}

// CreateCourse validates req and adds the resulting course.
func (r *Registry) CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	log := r.logger(ctx).With().Str("op", "create_course").Str("course_code", req.Code).Logger()

	if fields := validator.Struct(req); fields != nil {
		log.Warn().Interface("fields", fields).Msg("Course rejected")
		return nil, response.ValidationError(fmt.Sprintf("invalid course %q", req.Code), fields)
	}

	c, err := model.NewCourse(req.Code, req.Title, req.Description, req.Capacity, req.Schedule)
	if err != nil {
		log.Warn().Err(err).Msg("Course rejected")
		if errors.Is(err, model.ErrNegativeCapacity) {
			return nil, &response.Error{Code: response.ErrInvalidCapacity, Message: fmt.Sprintf("invalid course %q: %v", req.Code, err)}
		}
		return nil, fmt.Errorf("new course: %w", err)
	}

	r.AddCourse(c)
	log.Info().Int("capacity", c.Capacity).Msg("Course created")
	return c, nil
}

// CreateStudent validates req and adds the resulting student.
func (r *Registry) CreateStudent(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	log := r.logger(ctx).With().Str("op", "create_student").Str("student_id", req.ID).Logger()

	if fields := validator.Struct(req); fields != nil {
		log.Warn().Interface("fields", fields).Msg("Student rejected")
		return nil, response.ValidationError(fmt.Sprintf("invalid student %q", req.ID), fields)
	}

	s := model.NewStudent(req.ID, req.Name)
	r.AddStudent(s)
	log.Info().Msg("Student created")
	return s, nil
}

// FindCourseByCode returns the first course whose code matches, ignoring case.
func (r *Registry) FindCourseByCode(code string) (*model.Course, bool) {
	c, err := r.courseRepo.GetByCode(code)
	if err != nil {
		return nil, false
	}
	return c, true
}

// FindStudentByID looks a student up by exact ID.
func (r *Registry) FindStudentByID(id string) (*model.Student, bool) {
	s, err := r.studentRepo.GetByID(id)
	if err != nil {
		return nil, false
	}
	return s, true
}

// ListAllCourses returns every course in the order it was added.
func (r *Registry) ListAllCourses() []*model.Course {
	return r.courseRepo.List()
}

// ListAvailableCourses returns the courses with open slots, in the order
// they were added.
func (r *Registry) ListAvailableCourses() []*model.Course {
	return r.courseRepo.ListAvailable()
}

// ListStudents returns every student ordered by ID.
func (r *Registry) ListStudents() []*model.Student {
	return r.studentRepo.List()
}

// ─── Registration ──────────────────────────────────────────────────────

// Register enrolls a student into a course if it has an open slot.
// A failed outcome leaves every record unchanged.
func (r *Registry) Register(ctx context.Context, studentID, courseCode string) response.Outcome {
	cmdID := response.CommandIDFromContext(ctx)
	log := r.logger(ctx).With().Str("op", "register").Str("student_id", studentID).Str("course_code", courseCode).Logger()

	student, course, failed := r.lookup(cmdID, studentID, courseCode)
	if failed != nil {
		log.Info().Str("code", string(failed.Error.Code)).Msg("Registration rejected")
		return *failed
	}

	if course.AvailableSlots() <= 0 {
		log.Info().Int("capacity", course.Capacity).Msg("Registration rejected: course full")
		return response.Fail(cmdID, response.ErrCourseFull,
			fmt.Sprintf("Course %s is full. Cannot register.", course.Title))
	}

	if r.opts.RejectDuplicateRegistration && student.IsRegistered(course.Code) {
		log.Info().Msg("Registration rejected: already registered")
		return response.Fail(cmdID, response.ErrAlreadyRegistered,
			fmt.Sprintf("Student %s is already registered for course %s", student.Name, course.Title))
	}

	if err := course.Enroll(); err != nil {
		log.Error().Err(err).Msg("Enroll failed after slot check")
		return response.Fail(cmdID, response.ErrCourseFull,
			fmt.Sprintf("Course %s is full. Cannot register.", course.Title))
	}
	student.AddRegistration(course.Code)

	log.Info().
		Int("enrolled", course.Enrolled).
		Int("capacity", course.Capacity).
		Msg("Student registered")
	log.Debug().Msg(student.Describe())

	return response.Success(cmdID,
		fmt.Sprintf("Student %s registered successfully for course %s", student.Name, course.Title))
}

// Drop removes a student from a course they are registered in.
// A failed outcome leaves every record unchanged.
//
// Membership is checked against the course's stored code ignoring case, so
// registering "cse101" and dropping "CSE101" succeeds. Register always
// stores the canonical code rather than the code as typed.
func (r *Registry) Drop(ctx context.Context, studentID, courseCode string) response.Outcome {
	cmdID := response.CommandIDFromContext(ctx)
	log := r.logger(ctx).With().Str("op", "drop").Str("student_id", studentID).Str("course_code", courseCode).Logger()

	student, course, failed := r.lookup(cmdID, studentID, courseCode)
	if failed != nil {
		log.Info().Str("code", string(failed.Error.Code)).Msg("Drop rejected")
		return *failed
	}

	if !student.IsRegistered(course.Code) {
		log.Info().Msg("Drop rejected: not registered")
		return response.Fail(cmdID, response.ErrNotRegistered,
			fmt.Sprintf("Student %s is not registered for course %s", student.Name, course.Title))
	}

	// Registered students always hold a slot, so Drop cannot underflow here
	// unless the counter was changed outside the registry.
	if err := course.Drop(); err != nil {
		log.Error().Err(err).Msg("Course counter out of sync with registrations")
		return response.Fail(cmdID, response.ErrInternal, "")
	}
	student.RemoveRegistration(course.Code)

	log.Info().
		Int("enrolled", course.Enrolled).
		Int("capacity", course.Capacity).
		Msg("Student dropped course")
	log.Debug().Msg(student.Describe())

	return response.Success(cmdID,
		fmt.Sprintf("Student %s dropped course %s", student.Name, course.Title))
}

// lookup resolves both records, student first. On failure the returned
// outcome is non-nil.
func (r *Registry) lookup(cmdID, studentID, courseCode string) (*model.Student, *model.Course, *response.Outcome) {
	student, ok := r.FindStudentByID(studentID)
	if !ok {
		o := response.Fail(cmdID, response.ErrStudentNotFound, "Student not found with ID: "+studentID)
		return nil, nil, &o
	}

	course, ok := r.FindCourseByCode(courseCode)
	if !ok {
		o := response.Fail(cmdID, response.ErrCourseNotFound, "Course not found with code: "+courseCode)
		return nil, nil, &o
	}

	return student, course, nil
}

// logger prefers the command-scoped logger carried on ctx, including a
// disabled one. zerolog.Ctx hands back the same fallback pointer for every
// context without a logger, which is how a missing logger is told apart.
// Note that zerolog does not store a disabled logger on a context that has
// no logger yet.
func (r *Registry) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != zerolog.Ctx(context.Background()) {
		return l
	}
	return &r.log
}
