package upstream

import (
	_ "embed"
	"errors"
	"testing"

	"github.com/Nachthirsch/News-App/app/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/search.json
var searchBody []byte

//go:embed testdata/wire.json
var wireBody []byte

//go:embed testdata/sections.json
var sectionsBody []byte

func TestParse(t *testing.T) {
	t.Run("search", func(t *testing.T) {
		p, err := Parse(searchBody)
		require.NoError(t, err)
		assert.Equal(t, KindSearch, p.Kind)
		assert.Len(t, p.Search, 2)
		assert.Empty(t, p.Wire)
	})

	t.Run("wire", func(t *testing.T) {
		p, err := Parse(wireBody)
		require.NoError(t, err)
		assert.Equal(t, KindWire, p.Kind)
		assert.Len(t, p.Wire, 2)
		assert.Empty(t, p.Search)
	})

	t.Run("empty docs is a valid response", func(t *testing.T) {
		p, err := Parse([]byte(`{"response":{"docs":[]}}`))
		require.NoError(t, err)
		assert.Equal(t, KindSearch, p.Kind)
		assert.Empty(t, p.Articles())
	})

	tbl := []struct {
		name string
		body string
	}{
		{name: "no docs", body: `{"response":{"meta":{"hits":0}}}`},
		{name: "null docs", body: `{"response":{"docs":null}}`},
		{name: "no envelope", body: `{"fault":{"faultstring":"Invalid ApiKey"}}`},
		{name: "not json", body: `<html>oops</html>`},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected parse error, got %v", err)
			assert.Contains(t, err.Error(), "unexpected response format")
		})
	}
}

func TestPayload_Articles(t *testing.T) {
	p, err := Parse(wireBody)
	require.NoError(t, err)

	articles := p.Articles()
	require.Len(t, articles, 2)
	assert.Equal(t, "A.I. Everywhere", articles[0].Headline.Main)
	assert.True(t, articles[0].IsFromWireFeed)
	assert.Equal(t, NoTitle, articles[1].Headline.Main)
}

func TestParseSections(t *testing.T) {
	sections, err := ParseSections(sectionsBody)
	require.NoError(t, err)
	assert.Equal(t, []store.Section{
		{Section: "admin", DisplayName: "Admin"},
		{Section: "business", DisplayName: "Business"},
		{Section: "u.s.", DisplayName: "U.S."},
	}, sections)

	_, err = ParseSections([]byte(`{"status":"OK"}`))
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}
