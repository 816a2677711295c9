package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"namdo/internal/models/db_models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// Removing a favorite and saving it again must land a fresh row. The removal
// has to be a real DELETE; anything that leaves the old row holding the
// (account_id, name) unique index makes the re-add collide and vanish into
// the ON CONFLICT clause.
func TestFavoriteRepositoryRemoveThenReAdd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)
	accountID := uuid.New()
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "favorites"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.Insert(ctx, accountID.String(), &db_models.Favorite{Name: "Juknokwon"}))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "favorites"`).
		WithArgs(accountID, "Juknokwon").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := repo.DeleteByAccountIdAndName(ctx, accountID.String(), "Juknokwon")
	require.NoError(t, err)
	require.True(t, removed)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "favorites"`).WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.Insert(ctx, accountID.String(), &db_models.Favorite{Name: "Juknokwon"}))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepositoryDeleteMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "favorites"`).
		WithArgs(accountID, "Nowhere").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := repo.DeleteByAccountIdAndName(context.Background(), accountID.String(), "Nowhere")
	require.NoError(t, err)
	require.False(t, removed)
}
