package enrollment

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslex/campuslex/internal/platform/db"
	"github.com/campuslex/campuslex/internal/shared"
)

// Repository defines persistence operations for the enrollment module.
type Repository interface {
	CreateStudent(ctx context.Context, username, hashedPassword string) (int64, error)
	CreateAdmin(ctx context.Context, username, hashedPassword string) (int64, error)
	DeleteAdminByUsername(ctx context.Context, username string) error
	CreateCourse(ctx context.Context, name string) (int64, error)
	ListCourses(ctx context.Context) ([]Course, error)
	ListStudents(ctx context.Context) ([]Student, error)
	EnrollStudent(ctx context.Context, studentID, courseID int64) error
	StudentCourseNames(ctx context.Context, studentID int64) ([]string, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// CreateStudent inserts a student row and returns its id.
func (r *PGRepository) CreateStudent(ctx context.Context, username, hashedPassword string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (username, hashed_password, is_active) VALUES ($1, $2, TRUE) RETURNING id`,
		username, hashedPassword).Scan(&id)
	return id, err
}

// CreateAdmin inserts an admin row and returns its id.
func (r *PGRepository) CreateAdmin(ctx context.Context, username, hashedPassword string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (username, hashed_password) VALUES ($1, $2) RETURNING id`,
		username, hashedPassword).Scan(&id)
	return id, err
}

// DeleteAdminByUsername removes an admin row.
func (r *PGRepository) DeleteAdminByUsername(ctx context.Context, username string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM admins WHERE username = $1`, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CreateCourse inserts a course row and returns its id.
func (r *PGRepository) CreateCourse(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	return id, err
}

// ListCourses returns all courses ordered by id.
func (r *PGRepository) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM courses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var courses []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// ListStudents returns all students with their enrolled courses. Duplicate
// enrollments surface as repeated course entries, matching the stored rows.
func (r *PGRepository) ListStudents(ctx context.Context) ([]Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, username, is_active FROM students ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var students []Student
	index := make(map[int64]int)
	for rows.Next() {
		var s Student
		if err := rows.Scan(&s.ID, &s.Username, &s.IsActive); err != nil {
			return nil, err
		}
		s.Courses = []Course{}
		index[s.ID] = len(students)
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	courseRows, err := r.pool.Query(ctx,
		`SELECT e.student_id, c.id, c.name
		 FROM enrollments e JOIN courses c ON c.id = e.course_id
		 ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	defer courseRows.Close()
	for courseRows.Next() {
		var studentID int64
		var c Course
		if err := courseRows.Scan(&studentID, &c.ID, &c.Name); err != nil {
			return nil, err
		}
		if i, ok := index[studentID]; ok {
			students[i].Courses = append(students[i].Courses, c)
		}
	}
	return students, courseRows.Err()
}

// EnrollStudent appends a student-course association. The course existence
// check and the insert run in one transaction. No uniqueness is enforced on
// the pair.
func (r *PGRepository) EnrollStudent(ctx context.Context, studentID, courseID int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM courses WHERE id = $1)`, courseID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return shared.ErrNotFound
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO enrollments (student_id, course_id) VALUES ($1, $2)`, studentID, courseID)
		return err
	})
}

// StudentCourseNames returns the course names a student is enrolled in,
// one entry per enrollment row.
func (r *PGRepository) StudentCourseNames(ctx context.Context, studentID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.name
		 FROM enrollments e JOIN courses c ON c.id = e.course_id
		 WHERE e.student_id = $1
		 ORDER BY e.id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

var _ Repository = (*PGRepository)(nil)
