package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-payroll/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func (h *timesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet submitted", result)
}

func (h *timesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req, ok := reviewRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timesheetService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet approved", result)
}

func (h *timesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	req, ok := reviewRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timesheetService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet rejected", result)
}

func (h *timesheetHandlerImpl) Reopen(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.Reopen(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet reopened", result)
}

func reviewRequest(w http.ResponseWriter, r *http.Request) (timesheet.ReviewTimesheetRequest, bool) {
	reviewer, err := reviewerID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return timesheet.ReviewTimesheetRequest{}, false
	}
	return timesheet.ReviewTimesheetRequest{ID: chi.URLParam(r, "id"), ReviewerID: reviewer}, true
}
