package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/lotes-api/internal/domain"
)

// storageErr envuelve una falla de pgx como domain.StorageError, conservando el
// SQLSTATE cuando el driver lo expone (para diagnóstico del caller).
func storageErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return domain.NewStorageError(op, pgErr.Code, err)
	}
	return domain.NewStorageError(op, "", err)
}
