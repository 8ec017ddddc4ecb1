// Package dto holds the representations exchanged over the HTTP API.
package dto

// EmployeeDto is the HTTP-boundary representation of an employee.
type EmployeeDto struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
