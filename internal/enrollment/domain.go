// Package enrollment provides student, admin, and course administration plus
// the student-facing course enrollment operation.
package enrollment

// Student is a student account with its enrolled courses.
type Student struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	IsActive bool     `json:"is_active"`
	Courses  []Course `json:"courses"`
}

// Admin is an administrator account.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Course is an enrollable course.
type Course struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Enrollment is the join record between a student and a course. Uniqueness of
// the (student, course) pair is not enforced; re-enrolling appends a second row.
type Enrollment struct {
	ID        int64 `json:"id"`
	StudentID int64 `json:"student_id"`
	CourseID  int64 `json:"course_id"`
}
