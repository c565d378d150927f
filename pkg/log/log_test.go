package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Deve gerar UUID quando não há ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "  ")

		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Deve reaproveitar o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "abc-123")

		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "abc-123", GetCorrelationID(ctx))
	})

	t.Run("Deve retornar vazio sem ID no contexto", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	require.NoError(t, Setup("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, Setup("barulhento"))
}

func TestForContext_FiltersFieldsInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	previous := L
	t.Cleanup(func() { L = previous })
	L = &logger{entry: logrus.NewEntry(base)}

	ctx, id := WithCorrelationID(context.Background(), "")
	ForContext(ctx).WithFields(Fields{"channel": "@canal", "user_agent": "curl", "user_name": "admin", "user_role": "ADMIN"}).Info("ok")

	out := buf.String()
	assert.Contains(t, out, id)
	assert.Contains(t, out, "@canal")
	assert.Contains(t, out, `"user_name":"admin"`)
	assert.Contains(t, out, `"user_role":"ADMIN"`)
	assert.NotContains(t, out, "user_agent")
	assert.NotContains(t, out, "curl")
}
