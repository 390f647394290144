package upstream

import (
	"encoding/json"
	"fmt"

	"github.com/Nachthirsch/News-App/app/store"
	"github.com/samber/lo"
)

// ParseError is returned when the upstream responded successfully, but the
// response envelope doesn't contain the expected result list.
type ParseError struct {
	Reason string
	Err    error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	msg := "unexpected response format"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying decoding error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// Kind is a kind of parsed payload.
type Kind int

// Possible payload kinds.
const (
	KindSearch Kind = iota + 1
	KindWire
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSearch:
		return "search"
	case KindWire:
		return "wire"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Payload is a parsed article list of either API.
type Payload struct {
	Kind   Kind
	Search []SearchDoc
	Wire   []WireItem
}

// Parse tries to parse the body as a search API response, then as a times
// wire response. Returns ParseError if it is neither of them.
func Parse(body []byte) (Payload, error) {
	var probe struct {
		SearchEnvelope
		WireEnvelope
	}

	if err := json.Unmarshal(body, &probe); err != nil {
		return Payload{}, &ParseError{Reason: "decode body", Err: err}
	}

	if probe.Response != nil && probe.Response.Docs != nil {
		return Payload{Kind: KindSearch, Search: probe.Response.Docs}, nil
	}

	if probe.Results != nil {
		return Payload{Kind: KindWire, Wire: probe.Results}, nil
	}

	return Payload{}, &ParseError{Reason: "neither response.docs nor results present"}
}

// Articles normalizes the payload into canonical articles.
func (p Payload) Articles() []store.Article {
	switch p.Kind {
	case KindSearch:
		return lo.Map(p.Search, func(d SearchDoc, _ int) store.Article { return NormalizeSearch(d) })
	case KindWire:
		return lo.Map(p.Wire, func(it WireItem, _ int) store.Article { return NormalizeWire(it) })
	default:
		return nil
	}
}

// ParseSections parses the times wire section list.
func ParseSections(body []byte) ([]store.Section, error) {
	var env struct {
		Results []store.Section `json:"results"`
	}

	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ParseError{Reason: "decode body", Err: err}
	}

	if env.Results == nil {
		return nil, &ParseError{Reason: "results not present"}
	}

	return env.Results, nil
}
