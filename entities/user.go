package entities

// User is the authenticated user's profile as returned by the burger
// API auth endpoints.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
