package upstream

import (
	"net/url"
	"strings"

	"github.com/Nachthirsch/News-App/app/store"
	"github.com/samber/lo"
)

// Placeholders for fields absent in the upstream records.
const (
	NoTitle          = "No Title Available"
	NoDescription    = "No description available"
	UnknownAuthor    = "Unknown Author"
	SearchSourceName = "The New York Times"
	WireSourceName   = "Times Wire"
)

// legacyImagePrefix is prepended to relative image urls of the legacy
// search API multimedia.
const legacyImagePrefix = "https://www.nytimes.com/"

// Image formats of the times wire multimedia.
const (
	formatThumbnail = "Standard Thumbnail"
	formatMedium    = "mediumThreeByTwo210"
	formatLarge     = "mediumThreeByTwo440"
	formatNormal    = "Normal"
	formatInline    = "articleInline"
)

// Subtypes of the legacy search API multimedia.
const (
	subtypeThumbnail = "thumbnail"
	subtypeMedium    = "thumbLarge"
	subtypeLarge     = "xlarge"
)

// NormalizeSearch converts the search API document into an article.
func NormalizeSearch(d SearchDoc) store.Article {
	a := store.Article{
		WebURL:      d.WebURL,
		Headline:    store.Headline{Main: orDefault(d.Headline.Main, NoTitle)},
		Abstract:    orDefault(d.Abstract, NoDescription),
		Snippet:     d.Snippet,
		Source:      orDefault(d.Source, SearchSourceName),
		Byline:      store.Byline{Original: orDefault(d.Byline.Original, UnknownAuthor)},
		SectionName: d.SectionName,
		PubDate:     d.PubDate,
		Images:      searchImages(d.Multimedia),
	}
	a.ImageURL = bestImage(a.Images, a.Headline.Main)
	return a
}

// NormalizeWire converts the times wire item into an article.
func NormalizeWire(it WireItem) store.Article {
	a := store.Article{
		WebURL:         it.URL,
		Headline:       store.Headline{Main: orDefault(it.Title, NoTitle)},
		Abstract:       orDefault(it.Abstract, NoDescription),
		Snippet:        it.Abstract,
		Source:         orDefault(it.Source, WireSourceName),
		Byline:         store.Byline{Original: orDefault(it.Byline, UnknownAuthor)},
		SectionName:    it.Section,
		PubDate:        it.PublishedDate,
		Images:         wireImages(it.Multimedia),
		IsFromWireFeed: true,
	}
	a.ImageURL = bestImage(a.Images, a.Headline.Main)
	return a
}

func wireImages(mm []Media) store.Images {
	return store.Images{
		Small:  findFormat(mm, formatThumbnail),
		Medium: findFormat(mm, formatMedium),
		Large:  findFormat(mm, formatLarge),
		Inline: findFormat(mm, formatNormal, formatInline),
	}
}

func searchImages(mm SearchMultimedia) store.Images {
	switch {
	case mm.Object != nil:
		var imgs store.Images
		if mm.Object.Default != nil && mm.Object.Default.URL != "" {
			imgs.Large = lo.ToPtr(mm.Object.Default.URL)
		}
		if mm.Object.Thumbnail != nil && mm.Object.Thumbnail.URL != "" {
			imgs.Small = lo.ToPtr(mm.Object.Thumbnail.URL)
		}
		return imgs
	case len(mm.Legacy) > 0:
		legacy := lo.Map(mm.Legacy, func(m Media, _ int) Media {
			m.URL = absoluteURL(m.URL)
			// legacy items carry the size in subtype, the wire-like ones in format
			if m.Format == "" {
				m.Format = m.Subtype
			}
			return m
		})

		imgs := store.Images{
			Small:  findFormat(legacy, subtypeThumbnail, formatThumbnail),
			Medium: findFormat(legacy, subtypeMedium, formatMedium),
			Large:  findFormat(legacy, subtypeLarge, formatLarge),
			Inline: findFormat(legacy, formatNormal, formatInline),
		}

		if imgs == (store.Images{}) && legacy[0].URL != "" {
			imgs.Inline = lo.ToPtr(legacy[0].URL)
		}

		return imgs
	default:
		return store.Images{}
	}
}

// findFormat returns the url of the first media of any of the given formats.
func findFormat(mm []Media, formats ...string) *string {
	m, ok := lo.Find(mm, func(m Media) bool {
		return m.URL != "" && lo.Contains(formats, m.Format)
	})
	if !ok {
		return nil
	}
	return lo.ToPtr(m.URL)
}

// bestImage picks the largest available image, or a generated placeholder
// with the headline text.
func bestImage(imgs store.Images, headline string) string {
	for _, u := range []*string{imgs.Large, imgs.Medium, imgs.Inline, imgs.Small} {
		if u != nil {
			return *u
		}
	}
	return PlaceholderImage(headline)
}

// PlaceholderImage returns an url of a generated image with the given text.
func PlaceholderImage(text string) string {
	return "https://placehold.co/600x400?text=" + url.QueryEscape(text)
}

func absoluteURL(u string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return legacyImagePrefix + strings.TrimPrefix(u, "/")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
