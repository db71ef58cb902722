package domain

// Candidate is a user that can be suggested after the "@" trigger
type Candidate struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
}

// DisplayName returns "First Last"
func (c Candidate) DisplayName() string {
	return c.FirstName + " " + c.LastName
}
