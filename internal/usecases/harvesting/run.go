package harvesting

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/youstats/infrastructure/integrator/youtube"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/pkg/utils"
)

// run guarda o estado de uma única coleta: sessão, buffers e estado corrente
type run struct {
	pipeline  *Pipeline
	channelID string
	session   youtube.Session
	state     State
	logger    *logrus.Entry

	profile *domain.ChannelProfile
	links   []string
	videos  []domain.VideoRecord
}

func (r *run) transition(to State) {
	from := r.state
	r.state = to
	r.notify(from, to)
}

func (r *run) notify(from, to State) {
	if r.pipeline.observer != nil {
		r.pipeline.observer(r.channelID, from, to)
	}
}

func (r *run) openChannel(ctx context.Context) error {
	url := youtube.ChannelURL(r.pipeline.baseURL, r.channelID, "")

	if err := r.session.NavigateTo(ctx, url); err != nil {
		r.logger.WithError(err).WithField("step", StepOpenChannel).Error("Erro ao abrir a página do canal")
		return &ChannelResolutionError{ChannelID: r.channelID, Step: StepOpenChannel, Err: err}
	}

	return nil
}

// dismissConsent confirma o aviso de cookies quando ele aparece.
// A ausência do botão não é erro; a falha ao clicar nele é.
func (r *run) dismissConsent(ctx context.Context) error {
	button, err := r.session.WaitForElement(ctx, r.pipeline.selectors.ConsentButton, r.pipeline.waitTimeout)
	if err != nil {
		r.logger.WithError(err).WithField("step", StepDismissConsent).Debug("Aviso de consentimento não encontrado")
		return nil
	}

	if err := r.session.Click(ctx, button); err != nil {
		r.logger.WithError(err).WithField("step", StepDismissConsent).Error("Erro ao confirmar o consentimento")
		return &ChannelResolutionError{ChannelID: r.channelID, Step: StepDismissConsent, Err: err}
	}

	return nil
}

// extractProfile lê o cabeçalho do canal. Qualquer campo com falha descarta o
// perfil inteiro, sem interromper a coleta dos vídeos.
func (r *run) extractProfile(ctx context.Context) {
	logger := r.logger.WithField("step", StepExtractProfile)

	if err := r.session.NavigateTo(ctx, youtube.ChannelURL(r.pipeline.baseURL, r.channelID, "about")); err != nil {
		logger.WithError(err).Warn("Erro ao abrir a aba about, perfil omitido")
		return
	}

	selectors := r.pipeline.selectors
	profile := &domain.ChannelProfile{}

	fields := []struct {
		name    string
		locator youtube.Locator
		apply   func(text string) error
	}{
		{"header_name", selectors.HeaderName, func(text string) error {
			profile.DisplayName = text
			return nil
		}},
		{"subscribers_num", selectors.SubscriberCount, func(text string) (err error) {
			profile.SubscriberCount, err = utils.ParseCompactCount(text)
			return err
		}},
		{"videos_num", selectors.VideoCount, func(text string) (err error) {
			profile.VideoCount, err = utils.ParseCompactCount(text)
			return err
		}},
		{"join_date", selectors.JoinedDate, func(text string) (err error) {
			profile.JoinedOn, err = utils.ParseVideoDate(text)
			return err
		}},
		{"total_views", selectors.TotalViews, func(text string) (err error) {
			profile.TotalViews, err = utils.ParseViewCount(text)
			return err
		}},
	}

	for _, field := range fields {
		text, err := r.readField(ctx, field.locator)
		if err == nil {
			err = field.apply(text)
		}
		if err != nil {
			logger.WithError(err).WithField("field", field.name).Warn("Erro ao extrair campo do perfil, perfil omitido")
			return
		}
	}

	r.profile = profile
}

// enumerateVideos rola a lista de vídeos até a altura da página estabilizar e
// coleta um link por vídeo, na ordem em que aparecem
func (r *run) enumerateVideos(ctx context.Context) {
	logger := r.logger.WithField("step", StepEnumerateVideos)

	if err := r.session.NavigateTo(ctx, youtube.ChannelURL(r.pipeline.baseURL, r.channelID, "videos")); err != nil {
		logger.WithError(err).Warn("Erro ao abrir a aba de vídeos, lista vazia")
		return
	}

	if err := r.scrollUntilStable(ctx); err != nil {
		logger.WithError(err).Warn("Erro ao rolar a lista de vídeos, usando o que já foi carregado")
	}

	items, err := r.session.FindElements(ctx, youtube.Descendant(r.pipeline.selectors.VideoItem, r.pipeline.selectors.VideoLink))
	if err != nil {
		logger.WithError(err).Warn("Erro ao listar os vídeos, lista vazia")
		return
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		href, err := r.session.ReadAttribute(item, "href")
		if err != nil {
			logger.WithError(err).Debug("Item de vídeo sem link, ignorado")
			continue
		}

		link, err := youtube.ResolveLink(r.pipeline.baseURL, href)
		if err != nil {
			logger.WithError(err).WithField("href", href).Debug("Link de vídeo inválido, ignorado")
			continue
		}

		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		r.links = append(r.links, link)
	}

	logger.WithField("links", len(r.links)).Debug("Vídeos encontrados")
}

func (r *run) scrollUntilStable(ctx context.Context) error {
	last, err := r.session.CurrentPageHeight(ctx)
	if err != nil {
		return err
	}

	for attempt := 0; attempt < r.pipeline.maxScrollAttempts; attempt++ {
		if err := r.session.ScrollToBottom(ctx); err != nil {
			return err
		}

		height, err := r.session.CurrentPageHeight(ctx)
		if err != nil {
			return err
		}
		if height == last {
			return nil
		}
		last = height
	}

	r.logger.WithField("attempts", r.pipeline.maxScrollAttempts).Warn("Limite de rolagens atingido")
	return nil
}

func (r *run) extractVideoDetails(ctx context.Context) {
	for i, link := range r.links {
		if err := ctx.Err(); err != nil {
			r.logger.WithError(err).WithField("remaining", len(r.links)-i).Warn("Coleta de vídeos interrompida")
			return
		}

		video, err := r.extractVideo(ctx, link)
		if err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"step": StepExtractVideoDetails,
				"link": link,
			}).Warn("Erro ao extrair vídeo, ignorado")
			continue
		}

		r.videos = append(r.videos, video)
	}
}

func (r *run) extractVideo(ctx context.Context, link string) (domain.VideoRecord, error) {
	selectors := r.pipeline.selectors

	if err := r.session.NavigateTo(ctx, link); err != nil {
		return domain.VideoRecord{}, err
	}

	// A descrição completa só aparece depois de expandida; sem o botão, segue com o texto visível
	if expand, err := r.session.WaitForElement(ctx, selectors.ExpandDescription, r.pipeline.waitTimeout); err == nil {
		if err := r.session.Click(ctx, expand); err != nil {
			r.logger.WithError(err).WithField("link", link).Debug("Não foi possível expandir a descrição")
		}
	}

	title, err := r.readField(ctx, selectors.VideoTitle)
	if err != nil {
		return domain.VideoRecord{}, err
	}

	description, err := r.readField(ctx, selectors.VideoDescription)
	if err != nil {
		return domain.VideoRecord{}, err
	}

	viewsText, err := r.readField(ctx, selectors.VideoViews)
	if err != nil {
		return domain.VideoRecord{}, err
	}

	views, err := utils.ParseViewCount(viewsText)
	if err != nil {
		return domain.VideoRecord{}, err
	}

	dateText, err := r.readField(ctx, selectors.VideoDate)
	if err != nil {
		return domain.VideoRecord{}, err
	}

	postedOn, err := utils.ParseVideoDate(dateText)
	if err != nil {
		return domain.VideoRecord{}, err
	}

	return domain.NewVideoRecord(title, views, postedOn, description, link)
}

func (r *run) buildSnapshot() *domain.ChannelSnapshot {
	id, err := r.pipeline.newID()
	if err != nil {
		r.logger.WithError(err).WithField("step", StepBuildSnapshot).Warn("Erro ao gerar ID do snapshot")
		id = ""
	}

	return domain.NewChannelSnapshot(id, r.channelID, r.profile, r.videos, r.pipeline.now())
}

// finalize libera a sessão em qualquer saída da coleta
func (r *run) finalize() {
	if err := r.session.Close(); err != nil {
		r.logger.WithError(err).WithField("step", StepFinalize).Warn("Erro ao fechar a sessão de navegação")
	}
}

func (r *run) readField(ctx context.Context, locator youtube.Locator) (string, error) {
	element, err := r.session.WaitForElement(ctx, locator, r.pipeline.waitTimeout)
	if err != nil {
		return "", err
	}

	return r.session.ReadText(element)
}
