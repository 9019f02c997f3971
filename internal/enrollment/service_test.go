package enrollment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslex/campuslex/internal/auth"
	"github.com/campuslex/campuslex/internal/shared"
)

// ============================================================================
// MOCK DEPENDENCIES
// ============================================================================

type mockRepo struct {
	students    map[int64]Student
	admins      map[string]Admin
	courses     map[int64]Course
	enrollments []Enrollment
	passwords   map[string]string
	nextID      int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		students:  make(map[int64]Student),
		admins:    make(map[string]Admin),
		courses:   make(map[int64]Course),
		passwords: make(map[string]string),
		nextID:    1,
	}
}

func (m *mockRepo) CreateStudent(ctx context.Context, username, hashedPassword string) (int64, error) {
	id := m.nextID
	m.nextID++
	m.students[id] = Student{ID: id, Username: username, IsActive: true}
	m.passwords[username] = hashedPassword
	return id, nil
}

func (m *mockRepo) CreateAdmin(ctx context.Context, username, hashedPassword string) (int64, error) {
	id := m.nextID
	m.nextID++
	m.admins[username] = Admin{ID: id, Username: username}
	m.passwords[username] = hashedPassword
	return id, nil
}

func (m *mockRepo) DeleteAdminByUsername(ctx context.Context, username string) error {
	if _, ok := m.admins[username]; !ok {
		return shared.ErrNotFound
	}
	delete(m.admins, username)
	return nil
}

func (m *mockRepo) CreateCourse(ctx context.Context, name string) (int64, error) {
	id := m.nextID
	m.nextID++
	m.courses[id] = Course{ID: id, Name: name}
	return id, nil
}

func (m *mockRepo) ListCourses(ctx context.Context) ([]Course, error) {
	courses := []Course{}
	for _, c := range m.courses {
		courses = append(courses, c)
	}
	return courses, nil
}

func (m *mockRepo) ListStudents(ctx context.Context) ([]Student, error) {
	students := []Student{}
	for _, s := range m.students {
		s.Courses = []Course{}
		for _, e := range m.enrollments {
			if e.StudentID == s.ID {
				s.Courses = append(s.Courses, m.courses[e.CourseID])
			}
		}
		students = append(students, s)
	}
	return students, nil
}

func (m *mockRepo) EnrollStudent(ctx context.Context, studentID, courseID int64) error {
	if _, ok := m.courses[courseID]; !ok {
		return shared.ErrNotFound
	}
	m.enrollments = append(m.enrollments, Enrollment{
		ID:        int64(len(m.enrollments) + 1),
		StudentID: studentID,
		CourseID:  courseID,
	})
	return nil
}

func (m *mockRepo) StudentCourseNames(ctx context.Context, studentID int64) ([]string, error) {
	names := []string{}
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			names = append(names, m.courses[e.CourseID].Name)
		}
	}
	return names, nil
}

// ============================================================================
// TESTS
// ============================================================================

func TestAddStudentHashesPassword(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)

	require.NoError(t, service.AddStudent(context.Background(), "alice", "pw1"))
	digest := repo.passwords["alice"]
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "pw1", digest)
	assert.True(t, auth.VerifyPassword("pw1", digest))
}

func TestEnrollCourseNotFound(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	studentID, err := repo.CreateStudent(context.Background(), "alice", "digest")
	require.NoError(t, err)

	err = service.Enroll(context.Background(), studentID, 999)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Empty(t, repo.enrollments)
}

// Duplicate enrollment is allowed and appends a second association row.
// Documented current behavior, not necessarily desired.
func TestEnrollDuplicateAppendsRow(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	ctx := context.Background()
	studentID, err := repo.CreateStudent(ctx, "alice", "digest")
	require.NoError(t, err)
	courseID, err := repo.CreateCourse(ctx, "Operating Systems")
	require.NoError(t, err)

	require.NoError(t, service.Enroll(ctx, studentID, courseID))
	require.NoError(t, service.Enroll(ctx, studentID, courseID))

	assert.Len(t, repo.enrollments, 2)

	names, err := service.StudentCourses(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Operating Systems", "Operating Systems"}, names)
}

func TestStudentsIncludeCourses(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	ctx := context.Background()
	studentID, err := repo.CreateStudent(ctx, "alice", "digest")
	require.NoError(t, err)
	courseID, err := repo.CreateCourse(ctx, "Linear Algebra")
	require.NoError(t, err)
	require.NoError(t, service.Enroll(ctx, studentID, courseID))

	students, err := service.Students(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Len(t, students[0].Courses, 1)
	assert.Equal(t, "Linear Algebra", students[0].Courses[0].Name)
}

func TestRemoveAdmin(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo)
	ctx := context.Background()
	require.NoError(t, service.AddAdmin(ctx, "root", "hunter2"))

	require.NoError(t, service.RemoveAdmin(ctx, "root"))
	assert.ErrorIs(t, service.RemoveAdmin(ctx, "root"), shared.ErrNotFound)
}
