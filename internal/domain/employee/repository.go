package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByLegajo retrieves an employee by legajo
	GetByLegajo(ctx context.Context, legajo string) (Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// ListByLugarTrabajo retrieves employees for one area
	ListByLugarTrabajo(ctx context.Context, lugar string) ([]Employee, error)

	// ListPage retrieves a page of employees ordered by legajo, starting
	// after the cursor legajo when present
	ListPage(ctx context.Context, lugar string, pageSize int, cursorLegajo string) ([]Employee, error)
}
