package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/youstats/internal/config"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/internal/usecases/comparing"
	"github.com/vfg2006/youstats/internal/usecases/comparing/mocks"
)

func TestParsePairs(t *testing.T) {
	tests := []struct {
		name        string
		values      []string
		expected    []ComparisonPair
		expectError bool
	}{
		{
			name:     "Deve ler pares válidos",
			values:   []string{"@a:@b", " @c : @d "},
			expected: []ComparisonPair{{Pivot: "@a", Target: "@b"}, {Pivot: "@c", Target: "@d"}},
		},
		{
			name:     "Deve ignorar entradas vazias",
			values:   []string{"", "  "},
			expected: []ComparisonPair{},
		},
		{
			name:        "Deve reportar entradas inválidas e manter as válidas",
			values:      []string{"@a", "@b:", ":@c", "@d:@e"},
			expected:    []ComparisonPair{{Pivot: "@d", Target: "@e"}},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := ParsePairs(tt.values)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidPair)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, pairs)
		})
	}
}

func newTestSyncService(t *testing.T, service comparing.ComparingService, pairs ...string) *ComparisonSyncService {
	t.Helper()

	cfg := &config.Config{ComparisonSync: config.ComparisonSync{
		CronSchedule:       "0 3 * * *",
		Pairs:              pairs,
		MaxConcurrentPairs: 2,
		Enabled:            true,
	}}
	return NewComparisonSyncService(service, cfg)
}

func TestComparisonSyncService_syncComparisons(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockComparingService(ctrl)

	available := &domain.ComparisonSide{ChannelID: "@a", Snapshot: domain.NewChannelSnapshot("1", "@a", nil, nil, time.Now())}
	unavailable := &domain.ComparisonSide{ChannelID: "@b", Err: errors.New("404")}

	service.EXPECT().Run(gomock.Any(), "@a", "@b").Return(&domain.Comparison{Pivot: available, Target: unavailable}, nil)
	service.EXPECT().Run(gomock.Any(), "@c", "@d").Return(nil, errors.New("falhou"))

	syncService := newTestSyncService(t, service, "@a:@b", "@c:@d")
	syncService.syncComparisons()

	status := syncService.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())

	results := status["last_results"].([]PairResult)
	require.Len(t, results, 2)
	assert.Equal(t, "@a:@b", results[0].Pair.String())
	assert.True(t, results[0].PivotAvailable)
	assert.False(t, results[0].TargetAvailable)
	assert.Equal(t, "falhou", results[1].Error)
}

func TestComparisonSyncService_TriggerManualSync(t *testing.T) {
	t.Run("Deve ignorar quando já existe sincronização em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockComparingService(ctrl)
		service.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		syncService := newTestSyncService(t, service, "@a:@b")
		syncService.syncRunning = true

		assert.False(t, syncService.TriggerManualSync())
		syncService.syncComparisons()
	})

	t.Run("Deve executar os pares em segundo plano", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockComparingService(ctrl)
		done := make(chan struct{})

		service.EXPECT().Run(gomock.Any(), "@a", "@b").DoAndReturn(
			func(_ context.Context, _ string, _ string) (*domain.Comparison, error) {
				defer close(done)
				return nil, errors.New("indisponível")
			})

		syncService := newTestSyncService(t, service, "@a:@b")
		assert.True(t, syncService.TriggerManualSync())

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("sincronização manual não executou")
		}

		assert.Eventually(t, func() bool {
			return syncService.GetStatus()["sync_running"] == false
		}, 5*time.Second, 10*time.Millisecond)
	})
}

func TestComparisonSyncService_Start_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockComparingService(ctrl)

	cfg := &config.Config{ComparisonSync: config.ComparisonSync{Enabled: false}}
	syncService := NewComparisonSyncService(service, cfg)

	assert.NoError(t, syncService.Start(t.Context()))
	assert.Equal(t, false, syncService.GetStatus()["sync_enabled"])
}
