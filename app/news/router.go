package news

import (
	"fmt"
	"strings"
	"unicode"
)

// Provider is an upstream news provider.
type Provider string

// Supported providers.
const (
	ProviderSearch Provider = "articlesearch"
	ProviderWire   Provider = "timeswire"
)

// ParseProvider returns the provider by its name.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderSearch, ProviderWire:
		return p, nil
	case "":
		return ProviderSearch, nil
	default:
		return "", fmt.Errorf("unknown provider %q", s)
	}
}

// WirePageSize is the amount of items in a page of the times wire.
const WirePageSize = 20

// AllSections is a pseudo-section of the times wire with all articles.
const AllSections = "all"

const sectionPrefix = "section:"

// sectionTerms maps search terms to times wire sections, the first match wins.
var sectionTerms = []struct{ term, section string }{
	{"technology", "technology"},
	{"tech", "technology"},
	{"business", "business"},
	{"politics", "politics"},
	{"sport", "sports"},
	{"sports", "sports"},
	{"world", "world"},
	{"art", "arts"},
	{"arts", "arts"},
	{"science", "science"},
	{"health", "health"},
	{"fashion", "fashion"},
	{"food", "food"},
	{"travel", "travel"},
	{"opinion", "opinion"},
	{"us", "u.s."},
	{"usa", "u.s."},
	{"america", "u.s."},
}

// Request is a concrete upstream request for a search query.
type Request struct {
	Provider Provider
	Query    string // search API only
	Page     int

	// times wire only
	Source  string
	Section string
	Limit   int
	Offset  int
}

// Route translates a search query into a request to the given provider.
// The times wire can't search by text, so the query is mapped to a section.
func Route(query string, provider Provider, page int) Request {
	if provider != ProviderWire {
		return Request{Provider: ProviderSearch, Query: query, Page: page}
	}

	return Request{
		Provider: ProviderWire,
		Page:     page,
		Source:   AllSections,
		Section:  SectionFor(query),
		Limit:    WirePageSize,
		Offset:   page * WirePageSize,
	}
}

// SectionFor returns the times wire section matching the query.
func SectionFor(query string) string {
	query = strings.TrimSpace(query)

	if strings.HasPrefix(strings.ToLower(query), sectionPrefix) {
		if name := strings.TrimSpace(query[len(sectionPrefix):]); name != "" {
			return name
		}
		return AllSections
	}

	words := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, st := range sectionTerms {
		for _, w := range words {
			if w == st.term {
				return st.section
			}
		}
	}

	return AllSections
}
