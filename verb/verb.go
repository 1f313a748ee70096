// Package verb defines the domain models for Japanese verbs and their conjugation tables.
package verb

import (
	"fmt"
	"strings"
)

// Class identifies the conjugation class of a verb.
type Class string

const (
	Godan     Class = "godan"
	Ichidan   Class = "ichidan"
	Irregular Class = "irregular"
)

// Verb represents a dictionary-form verb as supplied by a conjugation engine.
type Verb struct {
	Dictionary string   `json:"dictionary"`
	Reading    string   `json:"reading"`
	Romaji     string   `json:"romaji"`
	Class      Class    `json:"class"`
	Meanings   []string `json:"meanings"`
}

func (v *Verb) String() string {
	if v.Reading == "" || v.Reading == v.Dictionary {
		return v.Dictionary
	}
	return fmt.Sprintf("%s (%s)", v.Dictionary, v.Reading)
}

// Gloss returns the verb's meanings as a single display string.
func (v *Verb) Gloss() string {
	return strings.Join(v.Meanings, "; ")
}

// Form is a single conjugated surface form.
type Form struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Reading string `json:"reading,omitempty"`
	Romaji  string `json:"romaji,omitempty"`
}

// Category groups forms under a grammatical heading (plain, polite, te-form...).
// Category order is meaningful and preserved from the engine.
type Category struct {
	Name  string `json:"name"`
	Forms []Form `json:"forms"`
}

// Conjugation is the complete conjugation table of one verb, as produced by
// one engine. Conjugation rules themselves live behind the engine boundary;
// this package only carries their output.
type Conjugation struct {
	Verb       *Verb      `json:"verb"`
	Categories []Category `json:"categories"`
	EngineID   string     `json:"engine_id"`
}

// Category returns the named category, if present.
func (c *Conjugation) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if strings.EqualFold(cat.Name, name) {
			return cat, true
		}
	}
	return Category{}, false
}

// Flatten returns all forms of all categories in display order.
func (c *Conjugation) Flatten() []Form {
	var forms []Form
	for _, cat := range c.Categories {
		forms = append(forms, cat.Forms...)
	}
	return forms
}
