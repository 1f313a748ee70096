// Package jisho provides a client for the Jisho.org dictionary API.
package jisho

import "strings"

// Entry is a single dictionary entry returned by the Jisho API.
type Entry struct {
	// Slug is the unique identifier of the entry on Jisho.
	Slug string `json:"slug" jsonschema:"description=ID of the entry on Jisho."`
	// IsCommon reports whether the word is tagged as common usage.
	IsCommon bool `json:"is_common" jsonschema:"description=Whether the word is tagged as common usage."`
	// JLPT lists the JLPT levels the word appears in, e.g. jlpt-n5.
	JLPT []string `json:"jlpt" jsonschema:"description=JLPT levels the word appears in."`
	// Japanese holds the written forms and their readings.
	Japanese []struct {
		// Word is the written form, usually in kanji.
		Word string `json:"word" jsonschema:"description=Written form of the word. Usually in kanji."`
		// Reading is the kana reading of the written form.
		Reading string `json:"reading" jsonschema:"description=Kana reading of the written form."`
	} `json:"japanese"`
	// Senses carries the English definitions grouped by sense.
	Senses []struct {
		// EnglishDefinitions are the translations of this sense.
		EnglishDefinitions []string `json:"english_definitions" jsonschema:"description=English translations of this sense."`
		// PartsOfSpeech classifies this sense grammatically.
		PartsOfSpeech []string `json:"parts_of_speech" jsonschema:"description=Grammatical classification of this sense."`
	} `json:"senses"`
}

// Name returns the primary display form of the entry. The written form is
// preferred; the reading is used when no written form exists.
func (e *Entry) Name() string {
	if len(e.Japanese) == 0 {
		return e.Slug
	}
	if e.Japanese[0].Word == "" {
		return e.Japanese[0].Reading
	}
	return e.Japanese[0].Word
}

// Reading returns the kana reading of the primary form.
func (e *Entry) Reading() string {
	if len(e.Japanese) == 0 {
		return ""
	}
	return e.Japanese[0].Reading
}

// Gloss returns the definitions of the first sense as a display string.
func (e *Entry) Gloss() string {
	if len(e.Senses) == 0 {
		return ""
	}
	return strings.Join(e.Senses[0].EnglishDefinitions, "; ")
}
