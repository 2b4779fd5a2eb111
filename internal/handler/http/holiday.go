package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListForMonth(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SeedSundays(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{
		holidayService: holidayService,
	}
}

// Add implements HolidayHandler.
func (h *holidayHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req holiday.AddHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode add holiday request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.holidayService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday added", result)
}

// Get implements HolidayHandler.
func (h *holidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Date must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.holidayService.Get(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListForMonth implements HolidayHandler.
func (h *holidayHandlerImpl) ListForMonth(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "month")
	if !validator.IsValidMonthKey(monthKey) {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	result, err := h.holidayService.ListForMonth(r.Context(), monthKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements HolidayHandler.
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	if err := h.holidayService.Delete(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// SeedSundays implements HolidayHandler. The year defaults to the current
// one when the query parameter is absent.
func (h *holidayHandlerImpl) SeedSundays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil || parsed < 1970 || parsed > 9999 {
			response.BadRequest(w, "Year must be a four-digit number", nil)
			return
		}
		year = parsed
	}

	result, err := h.holidayService.SeedSundays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sundays seeded", result)
}
