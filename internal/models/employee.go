package models

// Employee represents an employee document stored in the repository.
type Employee struct {
	ID        string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
