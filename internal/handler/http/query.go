package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-payroll/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll/internal/pkg/validator"
)

// queryDate reads a YYYY-MM-DD query parameter, falling back to today.
func queryDate(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return utils.Today(), nil
	}
	date, ok := validator.IsValidDate(raw)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{Field: key, Message: validator.MsgDate}}
	}
	return utils.Date(date), nil
}

// queryInt returns nil when the parameter is absent.
func queryInt(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validator.ValidationErrors{{Field: key, Message: "must be an integer"}}
	}
	return &v, nil
}

func queryBool(r *http.Request, key string, fallback bool) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, validator.ValidationErrors{{Field: key, Message: "must be true or false"}}
	}
	return v, nil
}

func queryString(r *http.Request, key string) *string {
	if raw := r.URL.Query().Get(key); raw != "" {
		return &raw
	}
	return nil
}

// reviewerID identifies the caller on review stamps: the linked employee when
// there is one, the user otherwise.
func reviewerID(r *http.Request) (string, error) {
	principal, err := jwt.PrincipalFromContext(r.Context())
	if err != nil {
		return "", err
	}
	if principal.EmployeeID != nil {
		return *principal.EmployeeID, nil
	}
	return principal.UserID, nil
}
