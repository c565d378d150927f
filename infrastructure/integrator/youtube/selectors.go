package youtube

import (
	"fmt"
	"net/url"
	"strings"
)

const DefaultBaseURL = "https://www.youtube.com"

// Selectors reúne todos os seletores dependentes da versão do site.
// Mudanças no layout da página ficam restritas a esta estrutura.
type Selectors struct {
	ConsentButton Locator

	HeaderName      Locator
	SubscriberCount Locator
	VideoCount      Locator
	JoinedDate      Locator
	TotalViews      Locator

	VideoItem Locator
	VideoLink Locator

	ExpandDescription Locator
	VideoTitle        Locator
	VideoDescription  Locator
	VideoViews        Locator
	VideoDate         Locator
}

// DefaultSelectors retorna os seletores do layout atual do site
func DefaultSelectors() Selectors {
	return Selectors{
		ConsentButton: `form[action*="consent"] button`,

		HeaderName:      `#channel-header #text`,
		SubscriberCount: `#subscriber-count`,
		VideoCount:      `#videos-count`,
		JoinedDate:      `#right-column yt-formatted-string:nth-of-type(2) span:nth-of-type(2)`,
		TotalViews:      `#right-column yt-formatted-string:nth-of-type(3)`,

		VideoItem: `ytd-rich-item-renderer`,
		VideoLink: `a.yt-simple-endpoint`,

		ExpandDescription: `#expand`,
		VideoTitle:        `#title h1 yt-formatted-string`,
		VideoDescription:  `#description-inline-expander`,
		VideoViews:        `#info span:nth-of-type(1)`,
		VideoDate:         `#info span:nth-of-type(3)`,
	}
}

// Descendant compõe um seletor relativo a outro (item → link do item)
func Descendant(parent, child Locator) Locator {
	return Locator(fmt.Sprintf("%s %s", parent, child))
}

// ChannelURL monta a URL da página do canal, opcionalmente com uma aba ("about", "videos")
func ChannelURL(baseURL, channelID, tab string) string {
	base := strings.TrimRight(baseURL, "/")
	channel := url.PathEscape(strings.TrimSpace(channelID))
	if tab == "" {
		return fmt.Sprintf("%s/%s", base, channel)
	}
	return fmt.Sprintf("%s/%s/%s", base, channel, tab)
}

// ResolveLink transforma links relativos ("/watch?v=...") em absolutos
func ResolveLink(baseURL, href string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}

	return base.ResolveReference(ref).String(), nil
}
