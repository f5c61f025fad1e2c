package user

import "time"

type Role string

const (
	RoleEmpleado Role = "empleado" // Kiosk / self-service only
	RoleAdmin    Role = "admin"    // Area admin - scoped to their lugar de trabajo
	RoleRRHH     Role = "rrhh"     // Human resources - full access
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Apellido     string
	Rol          Role
	LugarTrabajo *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsRRHH checks if the user belongs to human resources.
func (u *User) IsRRHH() bool {
	return u.Rol == RoleRRHH
}

// IsAdmin checks if the user is an area admin or RRHH.
func (u *User) IsAdmin() bool {
	return u.Rol == RoleAdmin || u.Rol == RoleRRHH
}

// Area returns the user's lugar de trabajo, or "" when unscoped.
func (u *User) Area() string {
	if u.LugarTrabajo == nil {
		return ""
	}
	return *u.LugarTrabajo
}
