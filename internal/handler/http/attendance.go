package http

import (
	"net/http"
	"strconv"

	"github.com/munidigital/asistencias-backend-go/internal/domain/attendance"
	"github.com/munidigital/asistencias-backend-go/internal/domain/user"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/middleware"
	"github.com/munidigital/asistencias-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListToday(w http.ResponseWriter, r *http.Request)
	ListPage(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// effectiveArea resolves the area filter: area admins are pinned to their
// own lugar de trabajo, rrhh may pass any area or none.
func effectiveArea(r *http.Request) string {
	if middleware.ClaimRole(r) == user.RoleAdmin {
		return middleware.ClaimArea(r)
	}
	return r.URL.Query().Get("area")
}

func pageParams(r *http.Request) (int, string) {
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	return pageSize, r.URL.Query().Get("cursor")
}

// ListToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	pageSize, cursor := pageParams(r)

	events, nextCursor, err := h.attendanceService.ListToday(r.Context(), effectiveArea(r), pageSize, cursor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, events, &response.Meta{
		NextCursor: nextCursor,
		Count:      len(events),
	})
}

// ListPage implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListPage(w http.ResponseWriter, r *http.Request) {
	pageSize, cursor := pageParams(r)

	events, nextCursor, err := h.attendanceService.ListPage(r.Context(), effectiveArea(r), pageSize, cursor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, events, &response.Meta{
		NextCursor: nextCursor,
		Count:      len(events),
	})
}
