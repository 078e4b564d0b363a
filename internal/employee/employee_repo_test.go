package employee_test

import (
	"context"
	"regexp"
	"testing"

	"go-assetms/internal/employee"
	"go-assetms/internal/shared/patch"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupEmployeeRepo(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return employee.NewRepository(gormDB), sqlMock
}

func TestEmployeeRepository_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	emplID := uuid.New().String()

	emplRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"employee_id", "employee_number", "first_name", "last_name", "email", "current_office_id",
		})
	}

	t.Run("binds sorted columns and returns the updated row", func(t *testing.T) {
		repo, sqlMock := setupEmployeeRepo(t)

		sqlMock.ExpectQuery(regexp.QuoteMeta(
			"UPDATE employees SET email = $1, first_name = $2 WHERE employee_id = $3 RETURNING *",
		)).
			WithArgs("ada@example.com", "Ada", emplID).
			WillReturnRows(emplRows().
				AddRow(emplID, "EMP-000001", "Ada", "Lovelace", "ada@example.com", nil))

		updated, err := repo.UpdatePartial(ctx, emplID, map[string]any{
			"first_name": "Ada",
			"email":      "ada@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, emplID, updated.ID.String())
		assert.Equal(t, "Ada", updated.FirstName)
		assert.Equal(t, "ada@example.com", updated.Email)
		assert.Nil(t, updated.CurrentOfficeID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to record not found", func(t *testing.T) {
		repo, sqlMock := setupEmployeeRepo(t)

		sqlMock.ExpectQuery(regexp.QuoteMeta(
			"UPDATE employees SET last_name = $1 WHERE employee_id = $2 RETURNING *",
		)).
			WithArgs("Lovelace", emplID).
			WillReturnRows(emplRows())

		_, err := repo.UpdatePartial(ctx, emplID, map[string]any{"last_name": "Lovelace"})

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("disallowed column never reaches the database", func(t *testing.T) {
		repo, sqlMock := setupEmployeeRepo(t)

		_, err := repo.UpdatePartial(ctx, emplID, map[string]any{"employee_id": uuid.New().String()})

		assert.ErrorIs(t, err, patch.ErrUnknownColumn)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
