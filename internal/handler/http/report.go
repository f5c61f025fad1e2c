package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/munidigital/asistencias-backend-go/internal/domain/report"
	"github.com/munidigital/asistencias-backend-go/internal/domain/user"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/middleware"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	QueryEvents(w http.ResponseWriter, r *http.Request)
	ExportEvents(w http.ResponseWriter, r *http.Request)
	QueryAbsences(w http.ResponseWriter, r *http.Request)
	ExportAbsences(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func eventQueryFromRequest(r *http.Request) report.EventQuery {
	q := r.URL.Query()
	return report.EventQuery{
		Desde:  q.Get("desde"),
		Hasta:  q.Get("hasta"),
		Legajo: q.Get("legajo"),
		Nombre: q.Get("nombre"),
		Area:   effectiveArea(r),
	}
}

// exportLayout picks the column set from the caller's role: rrhh gets the
// full layout, area admins the reduced one.
func exportLayout(r *http.Request) report.ExportLayout {
	if middleware.ClaimRole(r) == user.RoleRRHH {
		return report.LayoutRRHH
	}
	return report.LayoutAdmin
}

func writeWorkbook(w http.ResponseWriter, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// QueryEvents implements ReportHandler.
func (h *ReportHandlerImpl) QueryEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.reportService.QueryEvents(r.Context(), eventQueryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// ExportEvents implements ReportHandler.
func (h *ReportHandlerImpl) ExportEvents(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.ExportEvents(r.Context(), eventQueryFromRequest(r), exportLayout(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, "asistencias", data)
}

// QueryAbsences implements ReportHandler.
func (h *ReportHandlerImpl) QueryAbsences(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	absences, err := h.reportService.QueryAbsences(r.Context(), q.Get("desde"), q.Get("hasta"), effectiveArea(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absences)
}

// ExportAbsences implements ReportHandler.
func (h *ReportHandlerImpl) ExportAbsences(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	data, err := h.reportService.ExportAbsences(r.Context(), q.Get("desde"), q.Get("hasta"), effectiveArea(r), exportLayout(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, "ausencias", data)
}
