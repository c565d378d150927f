package youtube

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=browser.go -destination=mocks/browser.go -package=mocks

// ErrWaitTimeout é retornado quando um elemento não aparece dentro do tempo de espera
var ErrWaitTimeout = errors.New("timeout waiting for element")

// Locator é o seletor CSS de um elemento na página
type Locator string

// Element é uma referência opaca a um elemento encontrado na página atual
type Element interface {
	Locator() Locator
}

// Session é uma sessão de navegação isolada. Cada coleta de canal usa a sua.
type Session interface {
	NavigateTo(ctx context.Context, url string) error
	WaitForElement(ctx context.Context, locator Locator, timeout time.Duration) (Element, error)
	FindElements(ctx context.Context, locator Locator) ([]Element, error)
	ReadText(element Element) (string, error)
	ReadAttribute(element Element, name string) (string, error)
	Click(ctx context.Context, element Element) error
	ScrollToBottom(ctx context.Context) error
	CurrentPageHeight(ctx context.Context) (int, error)
	Close() error
}

// SessionFactory abre novas sessões de navegação
type SessionFactory interface {
	NewSession(ctx context.Context) (Session, error)
}
