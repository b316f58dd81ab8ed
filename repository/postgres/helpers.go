package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/todogo/backend/domain"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// mapUniqueViolation converts a unique-constraint rejection into the domain
// conflict error matching the violated column. Returns nil for any other error.
func mapUniqueViolation(err error) *domain.Error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return domain.WrapError(domain.ErrCodeConflict, domain.MsgUsernameTaken, err)
	case strings.Contains(pgErr.ConstraintName, "email"):
		return domain.WrapError(domain.ErrCodeConflict, domain.MsgEmailTaken, err)
	default:
		return domain.WrapError(domain.ErrCodeConflict, domain.MsgUsernameEmailTaken, err)
	}
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
