package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/munidigital/asistencias-backend-go/internal/domain/absence"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// Upsert implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req absence.UpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Absence upsert decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.absenceService.Upsert(r.Context(), req)
	if err != nil {
		slog.Error("Absence upsert service error", "legajo", req.Legajo, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Absence justification saved", "legajo", saved.Legajo, "fecha", saved.Fecha, "justificado", saved.Justificado)
	response.Success(w, saved)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	absences, err := h.absenceService.ListByRange(r.Context(), q.Get("desde"), q.Get("hasta"), effectiveArea(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absences)
}
