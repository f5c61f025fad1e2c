package employee

import "time"

type Employee struct {
	ID           string
	Legajo       string
	Nombre       string
	Apellido     string
	LugarTrabajo string
	Secretaria   string
	Horario      string
	Rol          string
	CreatedAt    time.Time
}
