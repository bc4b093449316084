package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/compensation"
	"github.com/cmlabs-hris/hris-payroll/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetCompensation(w http.ResponseWriter, r *http.Request)
	ReportingChain(w http.ResponseWriter, r *http.Request)
	Subordinates(w http.ResponseWriter, r *http.Request)
	Eligibility(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService     employee.EmployeeService
	compensationService compensation.CompensationService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, compensationService compensation.CompensationService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:     employeeService,
		compensationService: compensationService,
	}
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly, err := queryBool(r, "active_only", false)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.ListEmployees(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) GetCompensation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	asOf, err := queryDate(r, "as_of")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Unknown employees are a 404 rather than an empty compensation.
	if _, err := h.employeeService.GetEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.compensationService.CurrentCompensation(r.Context(), id, asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) ReportingChain(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ReportingChain(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Subordinates(w http.ResponseWriter, r *http.Request) {
	recursive, err := queryBool(r, "recursive", false)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.Subordinates(r.Context(), chi.URLParam(r, "id"), recursive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Eligibility(w http.ResponseWriter, r *http.Request) {
	asOf, err := queryDate(r, "as_of")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.Eligibility(r.Context(), chi.URLParam(r, "id"), asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
