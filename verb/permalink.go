package verb

import (
	"fmt"
	"net/url"
	"strings"
)

// PermalinkScheme is the URL scheme used for shareable application state.
const PermalinkScheme = "kanadojo"

// Permalink is the URL-encoded exchange format for application state:
// a current lookup and/or a history list. It is the only way state leaves
// the process; nothing here touches disk.
type Permalink struct {
	Verb    string
	Engine  string
	History []string
}

// Encode serializes the permalink into its canonical URL form,
// e.g. `kanadojo:?verb=食べる&engine=builtin`.
func (p Permalink) Encode() string {
	values := url.Values{}
	if p.Verb != "" {
		values.Set("verb", p.Verb)
	}
	if p.Engine != "" {
		values.Set("engine", p.Engine)
	}
	if len(p.History) > 0 {
		values.Set("history", strings.Join(p.History, "|"))
	}

	u := url.URL{Scheme: PermalinkScheme, RawQuery: values.Encode()}
	return u.String()
}

// ParsePermalink restores state from its URL form. A bare query string
// (without the scheme) is accepted as well.
func ParsePermalink(s string) (Permalink, error) {
	raw := strings.TrimPrefix(s, PermalinkScheme+":")
	raw = strings.TrimPrefix(raw, "?")

	values, err := url.ParseQuery(raw)
	if err != nil {
		return Permalink{}, fmt.Errorf("parse permalink: %w", err)
	}

	p := Permalink{
		Verb:   values.Get("verb"),
		Engine: values.Get("engine"),
	}
	if h := values.Get("history"); h != "" {
		p.History = strings.Split(h, "|")
	}

	return p, nil
}
