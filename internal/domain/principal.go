package domain

// Principal is the authenticated identity a request acts as. It is resolved
// once by the auth middleware and passed explicitly to every service method
// that touches owned resources.
type Principal struct {
	UserID string
	Email  string
}
