package ytclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/vfg2006/youstats/infrastructure/integrator/youtube"
	"github.com/vfg2006/youstats/internal/config"
)

var (
	ErrSessionClosed     = errors.New("session closed")
	ErrNoPageLoaded      = errors.New("no page loaded")
	ErrForeignElement    = errors.New("element does not belong to this session")
	ErrAttributeNotFound = errors.New("attribute not found")
)

// Factory abre sessões HTTP independentes. Cada sessão tem seu próprio
// cliente, cookies e limite de requisições.
type Factory struct {
	cfg config.Scraper
}

func NewFactory(cfg *config.Config) youtube.SessionFactory {
	return &Factory{cfg: cfg.Scraper}
}

func (f *Factory) NewSession(ctx context.Context) (youtube.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cookie jar: %w", err)
	}

	timeout := f.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	limit := rate.Inf
	if f.cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(f.cfg.RequestsPerSecond)
	}

	return &Session{
		cfg:     f.cfg,
		client:  &http.Client{Jar: jar, Timeout: timeout},
		limiter: rate.NewLimiter(limit, 1),
		loaded:  make(map[string]struct{}),
	}, nil
}

// Session navega sobre o HTML estático retornado pelo servidor.
// Não é segura para uso concorrente; cada coleta usa a sua.
type Session struct {
	cfg     config.Scraper
	client  *http.Client
	limiter *rate.Limiter

	doc     *goquery.Document
	pageURL *url.URL
	loaded  map[string]struct{}
	closed  bool
}

type element struct {
	owner     *Session
	locator   youtube.Locator
	selection *goquery.Selection
}

func (e *element) Locator() youtube.Locator {
	return e.locator
}

func (s *Session) NavigateTo(ctx context.Context, rawURL string) error {
	req, err := s.newRequest(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	return s.load(req)
}

// WaitForElement retorna o primeiro elemento do seletor. O documento não muda
// entre leituras, então a ausência é reportada sem esgotar o timeout.
func (s *Session) WaitForElement(ctx context.Context, locator youtube.Locator, timeout time.Duration) (youtube.Element, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	selection := s.doc.Find(string(locator)).First()
	if selection.Length() == 0 {
		return nil, fmt.Errorf("%w: %s (%s)", youtube.ErrWaitTimeout, locator, timeout)
	}

	return &element{owner: s, locator: locator, selection: selection}, nil
}

func (s *Session) FindElements(ctx context.Context, locator youtube.Locator) ([]youtube.Element, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	elements := make([]youtube.Element, 0)
	s.doc.Find(string(locator)).Each(func(_ int, selection *goquery.Selection) {
		elements = append(elements, &element{owner: s, locator: locator, selection: selection})
	})

	return elements, nil
}

func (s *Session) ReadText(el youtube.Element) (string, error) {
	e, err := s.own(el)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(e.selection.Text()), nil
}

func (s *Session) ReadAttribute(el youtube.Element, name string) (string, error) {
	e, err := s.own(el)
	if err != nil {
		return "", err
	}

	value, ok := e.selection.Attr(name)
	if !ok {
		return "", fmt.Errorf("%w: %s em %s", ErrAttributeNotFound, name, e.locator)
	}
	return value, nil
}

// Click segue o href de links ou submete o formulário que contém o elemento.
// Elementos sem nenhum dos dois só alteram a página no navegador real, então
// o clique não tem efeito aqui.
func (s *Session) Click(ctx context.Context, el youtube.Element) error {
	e, err := s.own(el)
	if err != nil {
		return err
	}
	if err := s.ready(ctx); err != nil {
		return err
	}

	if href, ok := e.selection.Attr("href"); ok && goquery.NodeName(e.selection) == "a" {
		target, err := s.resolve(href)
		if err != nil {
			return err
		}
		return s.NavigateTo(ctx, target)
	}

	form := e.selection.Closest("form")
	if form.Length() == 0 {
		logrus.Debugf("Clique sem efeito em %s", e.locator)
		return nil
	}

	return s.submit(ctx, form, e.selection)
}

// ScrollToBottom carrega a próxima página de continuação e anexa o conteúdo
// dela ao documento atual, aumentando a altura da página
func (s *Session) ScrollToBottom(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	selector := s.cfg.ContinuationSelector
	if selector == "" {
		selector = `link[rel="next"], a[rel="next"]`
	}

	href, ok := s.doc.Find(selector).Last().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return nil
	}

	next, err := s.resolve(href)
	if err != nil {
		return err
	}
	if _, seen := s.loaded[next]; seen {
		return nil
	}
	s.loaded[next] = struct{}{}

	req, err := s.newRequest(ctx, http.MethodGet, next, nil)
	if err != nil {
		return err
	}

	continuation, _, err := s.fetch(req)
	if err != nil {
		return err
	}

	content, err := continuation.Find("body").Html()
	if err != nil {
		return fmt.Errorf("erro ao ler continuação %s: %w", next, err)
	}

	s.doc.Find("body").AppendHtml(content)
	return nil
}

// CurrentPageHeight é a quantidade de nós do documento
func (s *Session) CurrentPageHeight(ctx context.Context) (int, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	return s.doc.Find("*").Length(), nil
}

func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.doc = nil
	s.client.CloseIdleConnections()
	return nil
}

func (s *Session) submit(ctx context.Context, form, clicked *goquery.Selection) error {
	values := url.Values{}
	form.Find("input[name]").Each(func(_ int, input *goquery.Selection) {
		inputType := strings.ToLower(input.AttrOr("type", "text"))
		if inputType == "submit" || inputType == "button" || inputType == "image" {
			return
		}
		if (inputType == "checkbox" || inputType == "radio") && !input.Is("[checked]") {
			return
		}
		values.Add(input.AttrOr("name", ""), input.AttrOr("value", ""))
	})

	if name, ok := clicked.Attr("name"); ok && name != "" {
		values.Add(name, clicked.AttrOr("value", ""))
	}

	action, err := s.resolve(form.AttrOr("action", ""))
	if err != nil {
		return err
	}

	method := strings.ToUpper(form.AttrOr("method", http.MethodGet))
	if method != http.MethodPost {
		target, err := url.Parse(action)
		if err != nil {
			return err
		}
		target.RawQuery = values.Encode()

		req, err := s.newRequest(ctx, http.MethodGet, target.String(), nil)
		if err != nil {
			return err
		}
		return s.load(req)
	}

	req, err := s.newRequest(ctx, http.MethodPost, action, strings.NewReader(values.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return s.load(req)
}

func (s *Session) newRequest(ctx context.Context, method, rawURL string, body *strings.Reader) (*http.Request, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}

	var req *http.Request
	var err error
	if body == nil {
		req, err = http.NewRequestWithContext(ctx, method, rawURL, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, rawURL, body)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição para %s: %w", rawURL, err)
	}

	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}
	if s.cfg.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", s.cfg.AcceptLanguage)
	}

	return req, nil
}

func (s *Session) load(req *http.Request) error {
	doc, pageURL, err := s.fetch(req)
	if err != nil {
		return err
	}

	s.doc = doc
	s.pageURL = pageURL
	s.loaded = make(map[string]struct{})
	return nil
}

func (s *Session) fetch(req *http.Request) (*goquery.Document, *url.URL, error) {
	if err := s.limiter.Wait(req.Context()); err != nil {
		return nil, nil, err
	}

	logrus.Debugf("%s %s", req.Method, req.URL)

	resp, err := s.client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("status inesperado %d em %s", resp.StatusCode, req.URL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao ler HTML de %s: %w", req.URL, err)
	}

	return doc, resp.Request.URL, nil
}

func (s *Session) ready(ctx context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.doc == nil {
		return ErrNoPageLoaded
	}
	return nil
}

func (s *Session) own(el youtube.Element) (*element, error) {
	e, ok := el.(*element)
	if !ok || e.owner != s {
		return nil, ErrForeignElement
	}
	if s.closed {
		return nil, ErrSessionClosed
	}
	return e, nil
}

func (s *Session) resolve(href string) (string, error) {
	if s.pageURL == nil {
		return "", ErrNoPageLoaded
	}
	return youtube.ResolveLink(s.pageURL.String(), href)
}
