package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestErrorHelpers(t *testing.T) {
	require.True(t, IsNotFound(fmt.Errorf("GetPost: %w", pgx.ErrNoRows)))
	require.False(t, IsNotFound(errors.New("x")))

	require.True(t, IsUniqueViolation(fmt.Errorf("CreateUser: %w", &pgconn.PgError{Code: "23505"})))
	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsUniqueViolation(errors.New("x")))
}
