package enrollment

import (
	"context"

	"github.com/campuslex/campuslex/internal/auth"
)

// Service handles enrollment business logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddStudent hashes the password and creates a student account.
func (s *Service) AddStudent(ctx context.Context, username, password string) error {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.repo.CreateStudent(ctx, username, digest)
	return err
}

// AddAdmin hashes the password and creates an admin account.
func (s *Service) AddAdmin(ctx context.Context, username, password string) error {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.repo.CreateAdmin(ctx, username, digest)
	return err
}

// RemoveAdmin deletes an admin account by username.
func (s *Service) RemoveAdmin(ctx context.Context, username string) error {
	return s.repo.DeleteAdminByUsername(ctx, username)
}

// AddCourse creates a course.
func (s *Service) AddCourse(ctx context.Context, name string) error {
	_, err := s.repo.CreateCourse(ctx, name)
	return err
}

// Courses lists all courses.
func (s *Service) Courses(ctx context.Context) ([]Course, error) {
	return s.repo.ListCourses(ctx)
}

// Students lists all students with their courses.
func (s *Service) Students(ctx context.Context) ([]Student, error) {
	return s.repo.ListStudents(ctx)
}

// Enroll associates the student with the course. Fails with shared.ErrNotFound
// when the course does not exist. Enrolling twice appends a duplicate row.
func (s *Service) Enroll(ctx context.Context, studentID, courseID int64) error {
	return s.repo.EnrollStudent(ctx, studentID, courseID)
}

// StudentCourses returns the names of the courses the student is enrolled in.
func (s *Service) StudentCourses(ctx context.Context, studentID int64) ([]string, error) {
	return s.repo.StudentCourseNames(ctx, studentID)
}
