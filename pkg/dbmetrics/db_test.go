package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM offline_reservations"))
	assert.Equal(t, "insert", operation("\n  insert into drafts (id) values (?)"))
	assert.Equal(t, "unknown", operation("   "))
}

func TestGetExecutor(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Nil(t, GetExecutor(ctx, nil))

	tx := fakeTx{}
	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, nil))
}
