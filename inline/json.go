// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"

	"github.com/Neicx/kana-dojo/jisho"
	"github.com/Neicx/kana-dojo/verb"
)

type Result struct {
	// Engine is the ID of the engine that produced the verb.
	Engine string `json:"engine"`
	// Verb is the dictionary-form verb as reported by the engine.
	Verb *verb.Verb `json:"verb"`
	// Conjugation is the full conjugation table (optional).
	Conjugation *verb.Conjugation `json:"conjugation,omitempty"`
	// Jisho is the matched dictionary entry (optional).
	Jisho *jisho.Entry `json:"jisho,omitempty"`
}

type Output struct {
	Query  string    `json:"query"`
	Result []*Result `json:"result"`
}

func asJson(results []*Result, query string) ([]byte, error) {
	if results == nil {
		results = []*Result{}
	}

	return json.Marshal(&Output{
		Query:  query,
		Result: results,
	})
}
