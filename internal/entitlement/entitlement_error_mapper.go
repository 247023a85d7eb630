package entitlement

import (
	"database/sql"
	"errors"
	"strings"

	entitlementerrors "github.com/SopitaJW/leave-management/internal/entitlement/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return entitlementerrors.ErrEntitlementNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_entitlement_employee_type_year" {
			return entitlementerrors.ErrEntitlementAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_entitlement_employee_type_year") {
		return entitlementerrors.ErrEntitlementAlreadyExists
	}

	return err
}
