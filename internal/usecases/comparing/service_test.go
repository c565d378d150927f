package comparing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	youtubemocks "github.com/vfg2006/youstats/infrastructure/integrator/youtube/mocks"
	repomocks "github.com/vfg2006/youstats/infrastructure/repository/mocks"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/internal/usecases/comparing/mocks"
	"github.com/vfg2006/youstats/internal/usecases/harvesting"
	reportmocks "github.com/vfg2006/youstats/internal/usecases/reporting/mocks"
)

func snapshotOf(t *testing.T, channelID string, dates ...string) *domain.ChannelSnapshot {
	t.Helper()

	videos := make([]domain.VideoRecord, 0, len(dates))
	for _, date := range dates {
		video, err := domain.NewVideoRecord("vídeo", 1, date, "", "https://yt.test/watch")
		require.NoError(t, err)
		videos = append(videos, video)
	}
	return domain.NewChannelSnapshot("id-"+channelID, channelID, nil, videos, time.Now())
}

func TestService_Run_MissingChannelIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		pivot  string
		target string
	}{
		{name: "Deve falhar sem pivô", pivot: "", target: "x"},
		{name: "Deve falhar sem alvo", pivot: "@pivo", target: ""},
		{name: "Deve falhar com identificador em branco", pivot: "   ", target: "@alvo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			factory := youtubemocks.NewMockSessionFactory(ctrl)
			factory.EXPECT().NewSession(gomock.Any()).Times(0)

			service := NewComparingService(harvesting.NewPipeline(factory, nil))

			comparison, err := service.Run(context.Background(), tt.pivot, tt.target)
			assert.Nil(t, comparison)
			assert.ErrorIs(t, err, ErrMissingChannelIdentifier)
		})
	}
}

func TestService_Run(t *testing.T) {
	t.Run("Deve coletar os dois canais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		harvester := mocks.NewMockHarvester(ctrl)

		pivot := snapshotOf(t, "@pivo", "01/01/2022")
		target := snapshotOf(t, "@alvo", "02/02/2022")

		harvester.EXPECT().Harvest(gomock.Any(), "@pivo").Return(pivot, nil)
		harvester.EXPECT().Harvest(gomock.Any(), "@alvo").Return(target, nil)

		comparison, err := NewComparingService(harvester).Run(context.Background(), " @pivo ", "@alvo")
		require.NoError(t, err)

		assert.True(t, comparison.Available())
		assert.Same(t, pivot, comparison.Pivot.Snapshot)
		assert.Same(t, target, comparison.Target.Snapshot)
	})

	t.Run("Deve marcar apenas o lado com falha como indisponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		harvester := mocks.NewMockHarvester(ctrl)

		resolutionErr := &harvesting.ChannelResolutionError{ChannelID: "@alvo", Step: harvesting.StepOpenChannel, Err: errors.New("404")}
		harvester.EXPECT().Harvest(gomock.Any(), "@pivo").Return(snapshotOf(t, "@pivo"), nil)
		harvester.EXPECT().Harvest(gomock.Any(), "@alvo").Return(nil, resolutionErr)

		comparison, err := NewComparingService(harvester).Run(context.Background(), "@pivo", "@alvo")
		require.NoError(t, err)

		assert.False(t, comparison.Available())
		assert.True(t, comparison.Pivot.Available())
		assert.False(t, comparison.Target.Available())
		assert.ErrorIs(t, comparison.Target.Err, harvesting.ErrChannelResolution)
		assert.Equal(t, "@alvo", comparison.Target.ChannelID)
	})

	t.Run("Deve executar as duas coletas em paralelo", func(t *testing.T) {
		var started sync.WaitGroup
		started.Add(2)
		barrier := make(chan struct{})
		go func() {
			started.Wait()
			close(barrier)
		}()

		harvester := harvesterFunc(func(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error) {
			started.Done()
			select {
			case <-barrier:
				return snapshotOf(t, channelID), nil
			case <-time.After(5 * time.Second):
				return nil, errors.New("a outra coleta não começou")
			}
		})

		comparison, err := NewComparingService(harvester).Run(context.Background(), "@pivo", "@alvo")
		require.NoError(t, err)
		assert.True(t, comparison.Available())
	})
}

func TestService_Run_StoreAndExport(t *testing.T) {
	at := time.Date(2024, 3, 5, 9, 7, 2, 0, time.UTC)

	t.Run("Deve salvar e exportar apenas os lados coletados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		harvester := mocks.NewMockHarvester(ctrl)
		store := repomocks.NewMockSnapshotRepository(ctrl)
		exporter := reportmocks.NewMockReportWriter(ctrl)

		pivot := snapshotOf(t, "@pivo", "01/01/2022")
		harvester.EXPECT().Harvest(gomock.Any(), "@pivo").Return(pivot, nil)
		harvester.EXPECT().Harvest(gomock.Any(), "@alvo").Return(nil, errors.New("falhou"))

		store.EXPECT().SaveSnapshot(gomock.Any(), pivot).Return(nil).Times(1)
		exporter.EXPECT().
			WriteTabularReport(gomock.Any(), "pivo&05_03_2024&09_07_02", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, report *domain.TabularReport) error {
				assert.Len(t, report.Sheets, 3)
				return nil
			}).
			Times(1)

		service := NewComparingService(harvester,
			WithStore(store),
			WithExporter(exporter),
			WithClock(func() time.Time { return at }),
		)

		comparison, err := service.Run(context.Background(), "@pivo", "@alvo")
		require.NoError(t, err)
		assert.True(t, comparison.Pivot.Available())
	})

	t.Run("Não deve falhar quando salvar ou exportar falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		harvester := mocks.NewMockHarvester(ctrl)
		store := repomocks.NewMockSnapshotRepository(ctrl)
		exporter := reportmocks.NewMockReportWriter(ctrl)

		harvester.EXPECT().Harvest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, channelID string) (*domain.ChannelSnapshot, error) {
				return snapshotOf(t, channelID), nil
			}).Times(2)
		store.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("db fora")).Times(2)
		exporter.EXPECT().WriteTabularReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disco cheio")).Times(2)

		service := NewComparingService(harvester, WithStore(store), WithExporter(exporter))

		comparison, err := service.Run(context.Background(), "@pivo", "@alvo")
		require.NoError(t, err)
		assert.True(t, comparison.Available())
	})
}

type harvesterFunc func(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error)

func (f harvesterFunc) Harvest(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error) {
	return f(ctx, channelID)
}
