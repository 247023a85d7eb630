package entitlementerrors

import (
	"net/http"

	"github.com/SopitaJW/leave-management/internal/shared/apperror"
)

var (
	ErrEntitlementNotFound = apperror.New(
		apperror.CodeNotFound,
		"no leave entitlement for this employee, leave type and year",
		http.StatusNotFound,
	)
	ErrEntitlementAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"entitlement already exists for this employee, leave type and year",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
