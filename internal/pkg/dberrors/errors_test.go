package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifiesPgErrors(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "courses_pkey"})
	check := &pgconn.PgError{Code: "23514", ConstraintName: "courses_level_check"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsCheckViolation(unique))
	assert.Equal(t, "courses_pkey", Constraint(unique))

	assert.True(t, IsCheckViolation(check))
	assert.Equal(t, "courses_level_check", Constraint(check))

	plain := errors.New("boom")
	assert.False(t, IsUniqueViolation(plain))
	assert.Equal(t, "", Constraint(plain))
}
