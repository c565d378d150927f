package harvesting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/youstats/infrastructure/integrator/youtube"
	"github.com/vfg2006/youstats/infrastructure/integrator/youtube/mocks"
	"github.com/vfg2006/youstats/internal/config"
)

const testBaseURL = "https://yt.test"

type fakeNode struct {
	text  string
	attrs map[string]string
}

type fakeElement struct {
	locator youtube.Locator
	node    fakeNode
}

func (e fakeElement) Locator() youtube.Locator {
	return e.locator
}

// fakeSession devolve textos fixos por URL e seletor
type fakeSession struct {
	pages       map[string]map[youtube.Locator][]fakeNode
	navigateErr map[string]error
	clickErr    error
	heights     []int

	current     string
	navigations []string
	scrolls     int
	clicks      int
	closed      int
}

func (s *fakeSession) NavigateTo(_ context.Context, url string) error {
	s.navigations = append(s.navigations, url)
	if err := s.navigateErr[url]; err != nil {
		return err
	}
	if _, ok := s.pages[url]; !ok {
		return fmt.Errorf("status inesperado 404 em %s", url)
	}
	s.current = url
	return nil
}

func (s *fakeSession) WaitForElement(_ context.Context, locator youtube.Locator, _ time.Duration) (youtube.Element, error) {
	nodes := s.pages[s.current][locator]
	if len(nodes) == 0 {
		return nil, youtube.ErrWaitTimeout
	}
	return fakeElement{locator: locator, node: nodes[0]}, nil
}

func (s *fakeSession) FindElements(_ context.Context, locator youtube.Locator) ([]youtube.Element, error) {
	elements := make([]youtube.Element, 0)
	for _, node := range s.pages[s.current][locator] {
		elements = append(elements, fakeElement{locator: locator, node: node})
	}
	return elements, nil
}

func (s *fakeSession) ReadText(el youtube.Element) (string, error) {
	return el.(fakeElement).node.text, nil
}

func (s *fakeSession) ReadAttribute(el youtube.Element, name string) (string, error) {
	value, ok := el.(fakeElement).node.attrs[name]
	if !ok {
		return "", errors.New("attribute not found")
	}
	return value, nil
}

func (s *fakeSession) Click(context.Context, youtube.Element) error {
	s.clicks++
	return s.clickErr
}

func (s *fakeSession) ScrollToBottom(context.Context) error {
	s.scrolls++
	return nil
}

func (s *fakeSession) CurrentPageHeight(context.Context) (int, error) {
	if len(s.heights) == 0 {
		return 100, nil
	}
	idx := s.scrolls
	if idx >= len(s.heights) {
		idx = len(s.heights) - 1
	}
	return s.heights[idx], nil
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeFactory struct {
	session *fakeSession
}

func (f *fakeFactory) NewSession(context.Context) (youtube.Session, error) {
	return f.session, nil
}

func text(value string) []fakeNode {
	return []fakeNode{{text: value}}
}

func link(href string) fakeNode {
	return fakeNode{attrs: map[string]string{"href": href}}
}

func channelPages(videoLinks ...fakeNode) map[string]map[youtube.Locator][]fakeNode {
	sel := youtube.DefaultSelectors()
	items := youtube.Descendant(sel.VideoItem, sel.VideoLink)

	return map[string]map[youtube.Locator][]fakeNode{
		testBaseURL + "/@canal": {
			sel.ConsentButton: text("Accept all"),
		},
		testBaseURL + "/@canal/about": {
			sel.HeaderName:      text("Canal de Teste"),
			sel.SubscriberCount: text("2.37K subscribers"),
			sel.VideoCount:      text("235 videos"),
			sel.JoinedDate:      text("Joined Nov 27, 2021"),
			sel.TotalViews:      text("3,130 views"),
		},
		testBaseURL + "/@canal/videos": {
			items: videoLinks,
		},
		testBaseURL + "/watch?v=1": {
			sel.ExpandDescription: text("...more"),
			sel.VideoTitle:        text("Primeiro vídeo"),
			sel.VideoDescription:  text("descrição completa"),
			sel.VideoViews:        text("3,130 views"),
			sel.VideoDate:         text("Nov 27, 2021"),
		},
		testBaseURL + "/watch?v=2": {
			sel.VideoTitle:       text("Segundo vídeo"),
			sel.VideoDescription: text(""),
			sel.VideoViews:       text("10 views"),
			sel.VideoDate:        text("Premiered Jan 5, 2022"),
		},
		testBaseURL + "/watch?v=3": {
			sel.VideoTitle:       text("Vídeo sem data"),
			sel.VideoDescription: text("sem data"),
			sel.VideoViews:       text("7 views"),
			sel.VideoDate:        text("Streamed 2 hours ago"),
		},
	}
}

func newTestPipeline(session *fakeSession, opts ...Option) *Pipeline {
	cfg := &config.Config{Scraper: config.Scraper{BaseURL: testBaseURL, MaxScrollAttempts: 5}}
	return NewPipeline(&fakeFactory{session: session}, cfg, opts...)
}

func TestPipeline_Harvest(t *testing.T) {
	harvestedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	session := &fakeSession{
		pages:   channelPages(link("/watch?v=1"), link("/watch?v=2"), link("/watch?v=1"), link("/watch?v=3")),
		heights: []int{100, 150, 150},
	}

	var states []State
	pipeline := newTestPipeline(session,
		WithClock(func() time.Time { return harvestedAt }),
		WithStateObserver(func(channelID string, _, to State) {
			assert.Equal(t, "@canal", channelID)
			states = append(states, to)
		}),
	)

	snapshot, err := pipeline.Harvest(context.Background(), " @canal ")
	require.NoError(t, err)

	assert.Equal(t, "@canal", snapshot.ChannelID)
	assert.Equal(t, "canal", snapshot.ChannelName)
	assert.Equal(t, harvestedAt, snapshot.HarvestedAt)
	assert.NotEmpty(t, snapshot.ID)

	require.NotNil(t, snapshot.Profile)
	assert.Equal(t, "Canal de Teste", snapshot.Profile.DisplayName)
	assert.Equal(t, int64(2370), snapshot.Profile.SubscriberCount)
	assert.Equal(t, int64(235), snapshot.Profile.VideoCount)
	assert.Equal(t, "11/27/2021", snapshot.Profile.JoinedOn)
	assert.Equal(t, int64(3130), snapshot.Profile.TotalViews)

	require.Len(t, snapshot.Videos, 2)
	assert.Equal(t, "Primeiro vídeo", snapshot.Videos[0].Title)
	assert.Equal(t, int64(3130), snapshot.Videos[0].Views)
	assert.Equal(t, "11/27/2021", snapshot.Videos[0].PostedOn)
	assert.Equal(t, testBaseURL+"/watch?v=1", snapshot.Videos[0].Link)
	assert.Equal(t, "01/05/2022", snapshot.Videos[1].PostedOn)
	assert.Equal(t, "", snapshot.Videos[1].Description)
	assert.Equal(t, []string{"2021", "2022"}, snapshot.YearsActive)

	assert.Equal(t, []State{
		StateFetchingProfile,
		StateFetchingVideoList,
		StateFetchingVideoDetails,
		StateAggregating,
		StateComplete,
	}, states)

	assert.Equal(t, 2, session.scrolls)
	assert.Equal(t, 2, session.clicks, "consentimento e expansão da descrição")
	assert.Equal(t, 1, session.closed)
}

func TestPipeline_Harvest_Degraded(t *testing.T) {
	sel := youtube.DefaultSelectors()

	t.Run("Deve retornar snapshot vazio quando não há vídeos", func(t *testing.T) {
		session := &fakeSession{pages: channelPages()}

		snapshot, err := newTestPipeline(session).Harvest(context.Background(), "@canal")
		require.NoError(t, err)

		assert.NotNil(t, snapshot.Videos)
		assert.Empty(t, snapshot.Videos)
		assert.NotNil(t, snapshot.YearsActive)
		assert.Empty(t, snapshot.YearsActive)
		assert.True(t, snapshot.IsEmpty())
		assert.Equal(t, 1, session.closed)
	})

	t.Run("Deve omitir o perfil quando um campo é inválido", func(t *testing.T) {
		pages := channelPages(link("/watch?v=1"))
		pages[testBaseURL+"/@canal/about"][sel.SubscriberCount] = text("sem inscritos")
		session := &fakeSession{pages: pages}

		snapshot, err := newTestPipeline(session).Harvest(context.Background(), "@canal")
		require.NoError(t, err)

		assert.Nil(t, snapshot.Profile)
		assert.Len(t, snapshot.Videos, 1)
	})

	t.Run("Deve omitir o perfil quando a aba about não abre", func(t *testing.T) {
		session := &fakeSession{
			pages:       channelPages(link("/watch?v=2")),
			navigateErr: map[string]error{testBaseURL + "/@canal/about": errors.New("timeout")},
		}

		snapshot, err := newTestPipeline(session).Harvest(context.Background(), "@canal")
		require.NoError(t, err)

		assert.Nil(t, snapshot.Profile)
		assert.Equal(t, []string{"2022"}, snapshot.YearsActive)
	})

	t.Run("Deve seguir sem consentimento quando o aviso não aparece", func(t *testing.T) {
		pages := channelPages(link("/watch?v=2"))
		delete(pages[testBaseURL+"/@canal"], sel.ConsentButton)
		session := &fakeSession{pages: pages}

		snapshot, err := newTestPipeline(session).Harvest(context.Background(), "@canal")
		require.NoError(t, err)

		assert.Len(t, snapshot.Videos, 1)
		assert.Equal(t, 0, session.clicks)
	})

	t.Run("Deve retornar lista vazia quando a aba de vídeos falha", func(t *testing.T) {
		session := &fakeSession{
			pages:       channelPages(link("/watch?v=1")),
			navigateErr: map[string]error{testBaseURL + "/@canal/videos": errors.New("timeout")},
		}

		snapshot, err := newTestPipeline(session).Harvest(context.Background(), "@canal")
		require.NoError(t, err)

		assert.Empty(t, snapshot.Videos)
		assert.NotNil(t, snapshot.Profile)
	})

	t.Run("Deve limitar a quantidade de rolagens", func(t *testing.T) {
		session := &fakeSession{
			pages:   channelPages(),
			heights: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		}

		cfg := &config.Config{Scraper: config.Scraper{BaseURL: testBaseURL, MaxScrollAttempts: 3}}
		_, err := NewPipeline(&fakeFactory{session: session}, cfg).Harvest(context.Background(), "@canal")
		require.NoError(t, err)

		assert.Equal(t, 3, session.scrolls)
	})
}

func TestPipeline_Harvest_ChannelResolution(t *testing.T) {
	t.Run("Deve falhar quando a página do canal não abre", func(t *testing.T) {
		session := &fakeSession{
			pages:       channelPages(),
			navigateErr: map[string]error{testBaseURL + "/@canal": errors.New("connection refused")},
		}

		var last State
		pipeline := newTestPipeline(session, WithStateObserver(func(_ string, _, to State) { last = to }))

		snapshot, err := pipeline.Harvest(context.Background(), "@canal")
		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, ErrChannelResolution)

		var resolutionErr *ChannelResolutionError
		require.ErrorAs(t, err, &resolutionErr)
		assert.Equal(t, StepOpenChannel, resolutionErr.Step)
		assert.Equal(t, "@canal", resolutionErr.ChannelID)

		assert.Equal(t, StateFailed, last)
		assert.Equal(t, 1, session.closed)
		assert.Len(t, session.navigations, 1)
	})

	t.Run("Deve falhar quando o consentimento não pode ser confirmado", func(t *testing.T) {
		session := &fakeSession{
			pages:    channelPages(),
			clickErr: errors.New("form submit failed"),
		}

		_, err := newTestPipeline(session).Harvest(context.Background(), "@canal")

		var resolutionErr *ChannelResolutionError
		require.ErrorAs(t, err, &resolutionErr)
		assert.Equal(t, StepDismissConsent, resolutionErr.Step)
		assert.Equal(t, 1, session.closed)
	})

	t.Run("Deve falhar sem abrir sessão quando o canal é vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		factory := mocks.NewMockSessionFactory(ctrl)
		factory.EXPECT().NewSession(gomock.Any()).Times(0)

		_, err := NewPipeline(factory, nil).Harvest(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrEmptyChannelID)
		assert.ErrorIs(t, err, ErrChannelResolution)
	})

	t.Run("Deve fechar a sessão quando a navegação falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		factory := mocks.NewMockSessionFactory(ctrl)
		session := mocks.NewMockSession(ctrl)

		factory.EXPECT().NewSession(gomock.Any()).Return(session, nil)
		session.EXPECT().NavigateTo(gomock.Any(), youtube.DefaultBaseURL+"/@canal").Return(errors.New("dns"))
		session.EXPECT().Close().Return(nil).Times(1)

		_, err := NewPipeline(factory, nil).Harvest(context.Background(), "@canal")
		assert.ErrorIs(t, err, ErrChannelResolution)
	})

	t.Run("Deve falhar quando a sessão não pode ser criada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		factory := mocks.NewMockSessionFactory(ctrl)
		factory.EXPECT().NewSession(gomock.Any()).Return(nil, errors.New("sem recursos"))

		_, err := NewPipeline(factory, nil).Harvest(context.Background(), "@canal")
		assert.ErrorIs(t, err, ErrChannelResolution)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "fetching_video_details", StateFetchingVideoDetails.String())
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateAggregating.Terminal())
}
