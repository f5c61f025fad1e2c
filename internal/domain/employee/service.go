package employee

import "context"

// EmployeeService defines business logic for employee records.
type EmployeeService interface {
	// Create registers a new employee from an admin or HR form, or from
	// the public self-registration flow
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetByLegajo retrieves one employee
	GetByLegajo(ctx context.Context, legajo string) (EmployeeResponse, error)

	// List retrieves employees, optionally restricted to one area
	List(ctx context.Context, lugar string) ([]EmployeeResponse, error)

	// ListPage retrieves a cursor page ordered by legajo
	ListPage(ctx context.Context, lugar string, pageSize int, cursorLegajo string) ([]EmployeeResponse, string, error)
}
