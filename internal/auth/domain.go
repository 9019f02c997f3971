// Package auth implements stateless bearer-token authentication: password
// verification, HS256 token issuance, and the request authorization pipeline
// with its per-kind role gates.
package auth

import "github.com/campuslex/campuslex/internal/shared"

// Account pairs a stored principal with its password digest.
// The digest never leaves this package.
type Account struct {
	Principal    shared.Principal
	PasswordHash string
}
