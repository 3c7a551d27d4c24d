package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código do Postgres para violação de constraint de exclusão
// (EXCLUDE USING gist na tabela de agendamentos).
const pgExclusionViolation = "23P01"

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}
