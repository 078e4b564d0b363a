package office_test

import (
	"context"
	"regexp"
	"testing"

	"go-assetms/internal/office"
	"go-assetms/internal/shared/patch"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupOfficeRepo(t *testing.T) (office.Repository, sqlmock.Sqlmock) {
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

	return office.NewRepository(gormDB), sqlMock
}

func TestOfficeRepository_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	officeID := uuid.New().String()

	t.Run("binds sorted columns and returns the updated row", func(t *testing.T) {
		repo, sqlMock := setupOfficeRepo(t)

		sqlMock.ExpectQuery(regexp.QuoteMeta(
			"UPDATE offices SET address = $1, office_name = $2 WHERE office_id = $3 RETURNING *",
		)).
			WithArgs("1 Main St", "HQ", officeID).
			WillReturnRows(sqlmock.NewRows([]string{"office_id", "office_name", "address"}).
				AddRow(officeID, "HQ", "1 Main St"))

		updated, err := repo.UpdatePartial(ctx, officeID, map[string]any{
			"office_name": "HQ",
			"address":     "1 Main St",
		})

		assert.NoError(t, err)
		assert.Equal(t, officeID, updated.ID.String())
		assert.Equal(t, "HQ", updated.OfficeName)
		assert.Equal(t, "1 Main St", *updated.Address)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to record not found", func(t *testing.T) {
		repo, sqlMock := setupOfficeRepo(t)

		sqlMock.ExpectQuery(regexp.QuoteMeta(
			"UPDATE offices SET office_name = $1 WHERE office_id = $2 RETURNING *",
		)).
			WithArgs("HQ", officeID).
			WillReturnRows(sqlmock.NewRows([]string{"office_id", "office_name", "address"}))

		_, err := repo.UpdatePartial(ctx, officeID, map[string]any{"office_name": "HQ"})

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("disallowed column never reaches the database", func(t *testing.T) {
		repo, sqlMock := setupOfficeRepo(t)

		_, err := repo.UpdatePartial(ctx, officeID, map[string]any{"office_id": uuid.New().String()})

		assert.ErrorIs(t, err, patch.ErrUnknownColumn)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
