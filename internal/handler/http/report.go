package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/report"
	"github.com/cmlabs-hris/hris-payroll/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	CompensationSummary(w http.ResponseWriter, r *http.Request)
	EmployeeCompensation(w http.ResponseWriter, r *http.Request)
	BudgetProjection(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// CompensationSummary handles GET /reports/compensation
// Query params: group_by (department|job_title), year, department,
// include_bonuses, include_benefits
func (h *reportHandlerImpl) CompensationSummary(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	includeBonuses, err := queryBool(r, "include_bonuses", true)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	includeBenefits, err := queryBool(r, "include_benefits", true)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.AggregateCompensation(r.Context(), report.CompensationSummaryRequest{
		GroupBy:         report.GroupBy(r.URL.Query().Get("group_by")),
		Year:            year,
		Department:      queryString(r, "department"),
		IncludeBonuses:  includeBonuses,
		IncludeBenefits: includeBenefits,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeCompensation handles GET /reports/employees/{id}/compensation?year=
// The year defaults to the current one.
func (h *reportHandlerImpl) EmployeeCompensation(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	y := utils.Today().Year()
	if year != nil {
		y = *year
	}

	result, err := h.reportService.EmployeeCompensation(r.Context(), chi.URLParam(r, "id"), y)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) BudgetProjection(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req := report.BudgetProjectionRequest{
		Year:       utils.Today().Year(),
		Department: queryString(r, "department"),
	}
	if year != nil {
		req.Year = *year
	}

	result, err := h.reportService.ProjectBudget(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
