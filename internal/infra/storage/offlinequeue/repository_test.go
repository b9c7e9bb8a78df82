package offlinequeue

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mercearia-ReservationService/internal/domain"
	"github.com/m04kA/Mercearia-ReservationService/internal/infra/storage/database"
	"github.com/m04kA/Mercearia-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Mercearia-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/Mercearia-ReservationService/pkg/txmanager"
)

func newTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, dialect, err := database.Open(ctx, database.Config{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "queue.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(ctx, db, dialect))

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped, txmanager.NewTransactionManager(wrapped), psqlbuilder.DialectSQLite), db
}

func entry(formID string, at time.Time) domain.OfflineReservationEntry {
	return domain.OfflineReservationEntry{
		FormID: formID,
		Payload: domain.SubmissionPayload{
			FormID:    formID,
			Timestamp: at.Format(time.RFC3339Nano),
			DadosPessoais: domain.PersonalData{
				Nome:  "Maria Silva",
				Email: "maria@example.com",
			},
			DetalhesReserva: domain.BookingDetails{
				QuantidadePessoas: 12,
				DataReserva:       "2025-03-14",
				LocalDesejado:     domain.LocationOutdoorFront,
			},
		},
		OfflineTimestamp: at,
	}
}

func formIDs(entries []domain.OfflineReservationEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.FormID)
	}
	return ids
}

func TestRepository_AppendAndList(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	at := time.Date(2025, 3, 12, 15, 4, 5, 123, time.UTC)

	for _, id := range []string{"c", "a", "b"} {
		added, err := repo.Append(ctx, entry(id, at))
		require.NoError(t, err)
		assert.True(t, added)
	}

	entries, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b"}, formIDs(entries))
	assert.Equal(t, at, entries[0].OfflineTimestamp)
	assert.Equal(t, "Maria Silva", entries[0].Payload.DadosPessoais.Nome)
	assert.Equal(t, domain.LocationOutdoorFront, entries[0].Payload.DetalhesReserva.LocalDesejado)
	assert.Less(t, entries[0].ID, entries[1].ID)
}

func TestRepository_AppendIsIdempotentPerFormID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	at := time.Now().UTC()

	added, err := repo.Append(ctx, entry("same", at))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Append(ctx, entry("same", at.Add(time.Minute)))
	require.NoError(t, err)
	assert.False(t, added)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_RemoveDelivered(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)
	at := time.Now().UTC()

	for _, id := range []string{"1", "2", "3"} {
		_, err := repo.Append(ctx, entry(id, at))
		require.NoError(t, err)
	}

	entries, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.RemoveDelivered(ctx, []int64{entries[0].ID, entries[2].ID}))

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, formIDs(remaining))

	require.NoError(t, repo.RemoveDelivered(ctx, nil))
}

func TestRepository_RemoveDeliveredRollsBack(t *testing.T) {
	ctx := context.Background()
	repo, db := newTestRepository(t)

	_, err := repo.Append(ctx, entry("1", time.Now().UTC()))
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "DROP TABLE offline_reservations")
	require.NoError(t, err)

	err = repo.RemoveDelivered(ctx, []int64{1})
	require.ErrorIs(t, err, ErrTransaction)
}

func TestRepository_EmptyList(t *testing.T) {
	repo, _ := newTestRepository(t)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
