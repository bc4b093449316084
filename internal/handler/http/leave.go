package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cmlabs-hris/hris-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	ListBalances(w http.ResponseWriter, r *http.Request)
	LeaveDays(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	requestService leave.RequestService
}

func NewLeaveHandler(requestService leave.RequestService) LeaveHandler {
	return &leaveHandlerImpl{requestService: requestService}
}

func (h *leaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	reviewer, err := reviewerID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.requestService.ApproveLeaveRequest(r.Context(), leave.ReviewLeaveRequest{
		ID:         chi.URLParam(r, "id"),
		ReviewerID: reviewer,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

func (h *leaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	reviewer, err := reviewerID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	// The body is optional; it only carries a rejection reason.
	var req leave.ReviewLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ReviewerID = reviewer

	result, err := h.requestService.RejectLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}

func (h *leaveHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if year == nil {
		current := utils.Today().Year()
		year = &current
	}

	result, err := h.requestService.ListBalances(r.Context(), chi.URLParam(r, "id"), *year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) LeaveDays(w http.ResponseWriter, r *http.Request) {
	includeWeekends, err := queryBool(r, "include_weekends", false)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := leave.LeaveDaysQuery{
		StartDate:       r.URL.Query().Get("start"),
		EndDate:         r.URL.Query().Get("end"),
		IncludeWeekends: includeWeekends,
	}.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
