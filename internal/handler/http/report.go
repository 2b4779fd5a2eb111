package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	GetMonthlySalary(w http.ResponseWriter, r *http.Request)
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthlySalary implements ReportHandler.
func (h *reportHandlerImpl) GetMonthlySalary(w http.ResponseWriter, r *http.Request) {
	employeeUID := chi.URLParam(r, "uid")
	monthKey := chi.URLParam(r, "month")
	if !validator.IsValidMonthKey(monthKey) {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	result, err := h.reportService.CalculateMonthlySalary(r.Context(), employeeUID, monthKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	response.Success(w, result)
}

// GetMonthlyReport implements ReportHandler.
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "month")
	if !validator.IsValidMonthKey(monthKey) {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	result, err := h.reportService.GenerateMonthlyReport(r.Context(), monthKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
