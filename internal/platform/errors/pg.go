package errors

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlstate classes and codes we map
// https://www.postgresql.org/docs/current/errcodes-appendix.html
var pgCodes = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,    // unique_violation
	"23503": ErrorCodeInvalidArgument, // foreign_key_violation
	"23502": ErrorCodeValidation,      // not_null_violation
	"23514": ErrorCodeValidation,      // check_violation
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"22P02": ErrorCodeInvalidArgument, // invalid_text_representation
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
}

// PgError returns the *pgconn.PgError in err's chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if stderrs.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool {
	pe, ok := PgError(err)
	return ok && pe.Code == "23505"
}

// FromPostgres wraps err with msg and a code derived from its sqlstate
// errors that are not from postgres get ErrorCodeDB
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code := ErrorCodeDB
	if pe, ok := PgError(err); ok {
		if c, ok := pgCodes[pe.Code]; ok {
			code = c
		}
		if pe.ColumnName != "" {
			return WithField(Wrap(err, code, msg), pe.ColumnName)
		}
	}
	return Wrap(err, code, msg)
}
