package employee

import (
	"context"

	"github.com/munidigital/asistencias-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Legajo:       req.Legajo,
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		LugarTrabajo: req.LugarTrabajo,
		Secretaria:   req.Secretaria,
		Horario:      req.Horario,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetByLegajo implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByLegajo(ctx context.Context, legajo string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByLegajo(ctx, legajo)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, lugar string) ([]employee.EmployeeResponse, error) {
	var (
		employees []employee.Employee
		err       error
	)

	if lugar != "" {
		employees, err = s.EmployeeRepository.ListByLugarTrabajo(ctx, lugar)
	} else {
		employees, err = s.EmployeeRepository.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}

// ListPage implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListPage(ctx context.Context, lugar string, pageSize int, cursorLegajo string) ([]employee.EmployeeResponse, string, error) {
	employees, err := s.EmployeeRepository.ListPage(ctx, lugar, pageSize, cursorLegajo)
	if err != nil {
		return nil, "", err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	nextCursor := ""
	if pageSize > 0 && len(employees) == pageSize {
		nextCursor = employees[len(employees)-1].Legajo
	}

	return responses, nextCursor, nil
}
