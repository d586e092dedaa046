package web

import (
	"net/http"

	"github.com/go-pkgz/rest"
)

// authUser is the only user name accepted by basic auth
const authUser = "jobfeed"

// authMiddleware checks basic auth credentials against the bcrypt hash.
// Missing or wrong credentials get 401 with WWW-Authenticate prompt.
func (s *Server) authMiddleware() func(http.Handler) http.Handler {
	return rest.BasicAuthWithBcryptHashAndPrompt(authUser, s.passwordHash)
}
