package enrollment

// CreateUserRequest carries credentials for a new student or admin.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateCourseRequest names a new course.
type CreateCourseRequest struct {
	Name string `json:"name" validate:"required"`
}

// EnrollRequest selects the course to enroll the calling student in.
type EnrollRequest struct {
	CourseID int64 `json:"course_id" validate:"required"`
}

// MessageResponse is the success envelope the original API clients expect.
type MessageResponse struct {
	Message string `json:"message"`
}
