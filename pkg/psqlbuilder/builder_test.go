package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_Placeholders(t *testing.T) {
	query, args, err := For(DialectPostgres).
		Select("id").
		From("offline_reservations").
		Where(squirrel.Eq{"form_id": "abc"}).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM offline_reservations WHERE form_id = $1", query)
	assert.Equal(t, []interface{}{"abc"}, args)

	query, _, err = For(DialectSQLite).
		Delete("offline_reservations").
		Where(squirrel.Eq{"id": []int64{1, 2}}).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM offline_reservations WHERE id IN (?,?)", query)
}

func TestPackageLevelBuildersUsePostgres(t *testing.T) {
	query, _, err := Insert("drafts").Columns("id").Values("x").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO drafts (id) VALUES ($1)", query)
}
