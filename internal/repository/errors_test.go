package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505"}), ErrDuplicateEmail)
	fk := &pgconn.PgError{Code: "23503"}
	assert.Same(t, fk, mapError(fk))
	assert.Same(t, other, mapError(other))
}
