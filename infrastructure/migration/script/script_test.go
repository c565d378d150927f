package main

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQueryer struct {
	executed []string
	failOn   string
}

func (r *recordingQueryer) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	if r.failOn != "" && strings.Contains(query, r.failOn) {
		return nil, errors.New("syntax error")
	}
	r.executed = append(r.executed, query)
	return nil, nil
}

func (r *recordingQueryer) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (r *recordingQueryer) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

func TestApply(t *testing.T) {
	t.Run("Deve criar snapshots antes dos vídeos", func(t *testing.T) {
		q := &recordingQueryer{}

		require.NoError(t, apply(context.Background(), q, plan(false)))
		require.Len(t, q.executed, 3)
		assert.Contains(t, q.executed[0], "CREATE TABLE IF NOT EXISTS channel_snapshots")
		assert.Contains(t, q.executed[2], "CREATE TABLE IF NOT EXISTS channel_videos")
	})

	t.Run("Deve remover tabelas primeiro quando pedido", func(t *testing.T) {
		q := &recordingQueryer{}

		require.NoError(t, apply(context.Background(), q, plan(true)))
		assert.Equal(t, "DROP TABLE IF EXISTS channel_videos", q.executed[0])
		assert.Equal(t, "DROP TABLE IF EXISTS channel_snapshots", q.executed[1])
	})

	t.Run("Deve identificar a migração que falhou", func(t *testing.T) {
		q := &recordingQueryer{failOn: "channel_videos ("}

		err := apply(context.Background(), q, plan(false))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "migração channel_videos, comando 1")
	})
}
