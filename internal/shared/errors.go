package shared

import "errors"

var (
	// ErrNotFound indicates a lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a missing, malformed, tampered, or expired token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNotAdmin indicates the admin gate rejected the caller.
	ErrNotAdmin = errors.New("not an admin user")
	// ErrNotStudent indicates the student gate rejected the caller.
	ErrNotStudent = errors.New("only students can enroll in courses")
	// ErrUnsupportedFileType indicates an unknown upload discriminator.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
