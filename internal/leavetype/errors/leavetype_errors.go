package leavetypeerrors

import (
	"net/http"

	"github.com/SopitaJW/leave-management/internal/shared/apperror"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"leave type with this name already exists",
		http.StatusConflict,
	)
)
