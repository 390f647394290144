// Package upstream contains raw shapes of the article search and times wire
// APIs and their normalization into store.Article.
package upstream

import (
	"bytes"
	"encoding/json"
)

// SearchEnvelope is a response of the article search API.
type SearchEnvelope struct {
	Response *struct {
		Docs []SearchDoc `json:"docs"`
	} `json:"response"`
}

// SearchDoc is a single article of the article search API.
type SearchDoc struct {
	WebURL   string `json:"web_url"`
	Headline struct {
		Main string `json:"main"`
	} `json:"headline"`
	Abstract string `json:"abstract"`
	Snippet  string `json:"snippet"`
	Source   string `json:"source"`
	Byline   struct {
		Original string `json:"original"`
	} `json:"byline"`
	SectionName string           `json:"section_name"`
	PubDate     string           `json:"pub_date"`
	Multimedia  SearchMultimedia `json:"multimedia"`
}

// SearchMultimedia is the multimedia field of the search API. Newer API
// versions send an object with default and thumbnail images, the legacy
// one sends an array of relative image urls.
type SearchMultimedia struct {
	Object *MediaObject
	Legacy []Media
}

// MediaObject is an object form of search API multimedia.
type MediaObject struct {
	Default   *Media `json:"default"`
	Thumbnail *Media `json:"thumbnail"`
}

// UnmarshalJSON picks the multimedia form by its JSON kind.
// Values of any other kind, as well as malformed ones, are treated as absent.
func (m *SearchMultimedia) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '{':
		obj := &MediaObject{}
		if err := json.Unmarshal(b, obj); err == nil {
			m.Object = obj
		}
	case '[':
		var legacy []Media
		if err := json.Unmarshal(b, &legacy); err == nil {
			m.Legacy = legacy
		}
	}

	return nil
}

// WireEnvelope is a response of the times wire content API.
type WireEnvelope struct {
	Results []WireItem `json:"results"`
}

// WireItem is a single article of the times wire API.
type WireItem struct {
	URL           string  `json:"url"`
	Title         string  `json:"title"`
	Abstract      string  `json:"abstract"`
	Source        string  `json:"source"`
	Byline        string  `json:"byline"`
	Section       string  `json:"section"`
	PublishedDate string  `json:"published_date"`
	Multimedia    []Media `json:"multimedia"`
}

// Media is an image descriptor, shared by both APIs.
type Media struct {
	URL       string `json:"url"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	Type      string `json:"type"`
	Subtype   string `json:"subtype"`
	Format    string `json:"format"`
	Caption   string `json:"caption"`
	Copyright string `json:"copyright"`
}
