package drafts

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/infra/storage/database"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()

	db, dialect, err := database.Open(ctx, database.Config{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "drafts.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(ctx, db, dialect))

	return NewRepository(db, dialect)
}

func TestRepository_SaveGetOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	draft := domain.NewReservationDraft()
	draft.Nome = "João"
	draft.TipoReserva = domain.TypeBirthday

	at := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, domain.DraftSnapshot{ID: "d1", FormData: draft, CurrentStep: 1, UpdatedAt: at}))

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "João", got.FormData.Nome)
	assert.Equal(t, 1, got.CurrentStep)
	assert.Equal(t, at, got.UpdatedAt)

	draft.QuantidadePessoas = 20
	require.NoError(t, repo.Save(ctx, domain.DraftSnapshot{ID: "d1", FormData: draft, CurrentStep: 2, UpdatedAt: at.Add(time.Hour)}))

	got, err = repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 20, got.FormData.QuantidadePessoas)
	assert.Equal(t, 2, got.CurrentStep)
}

func TestRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrDraftNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "missing"), ErrDraftNotFound)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Save(ctx, domain.DraftSnapshot{ID: "d1", FormData: domain.NewReservationDraft(), UpdatedAt: time.Now()}))
	require.NoError(t, repo.Delete(ctx, "d1"))

	_, err := repo.Get(ctx, "d1")
	require.ErrorIs(t, err, ErrDraftNotFound)
}
