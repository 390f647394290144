package store

// Article is a canonical news article, produced by normalizing upstream records.
type Article struct {
	WebURL         string   `json:"web_url"`
	Headline       Headline `json:"headline"`
	Abstract       string   `json:"abstract"`
	Snippet        string   `json:"snippet,omitempty"`
	Source         string   `json:"source"`
	Byline         Byline   `json:"byline"`
	SectionName    string   `json:"section_name,omitempty"`
	PubDate        string   `json:"pub_date,omitempty"`
	Images         Images   `json:"images"`
	ImageURL       string   `json:"image_url"`
	IsFromWireFeed bool     `json:"is_from_wire_feed"`
}

// Headline contains the article title.
type Headline struct {
	Main string `json:"main"`
}

// Byline contains the article author line.
type Byline struct {
	Original string `json:"original"`
}

// Images contains image urls of different sizes, nil if the upstream
// didn't provide one.
type Images struct {
	Small  *string `json:"small"`
	Medium *string `json:"medium"`
	Large  *string `json:"large"`
	Inline *string `json:"inline"`
}

// Section describes a section of the wire feed.
type Section struct {
	Section     string `json:"section"`
	DisplayName string `json:"display_name"`
}
