package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	MarkEarlyOff(w http.ResponseWriter, r *http.Request)
	ListForDate(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode mark request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked", result)
}

// MarkEarlyOff implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkEarlyOff(w http.ResponseWriter, r *http.Request) {
	var req attendance.EarlyOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode early-off request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkEarlyOff(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Early off recorded", result)
}

// ListForDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListForDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Date must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.attendanceService.ListForDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	employeeUID := chi.URLParam(r, "uid")
	monthKey := chi.URLParam(r, "month")
	if !validator.IsValidMonthKey(monthKey) {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	result, err := h.attendanceService.GetMonthly(r.Context(), employeeUID, monthKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance update request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")
	req.EmployeeUID = chi.URLParam(r, "uid")

	result, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	employeeUID := chi.URLParam(r, "uid")

	if err := h.attendanceService.Delete(r.Context(), date, employeeUID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}
