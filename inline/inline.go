// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/history"
	"github.com/Neicx/kana-dojo/jisho"
	"github.com/Neicx/kana-dojo/log"
	"github.com/Neicx/kana-dojo/query"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/samber/lo"
)

// found pairs a verb with the engine that produced it, so that a later
// conjugation is always performed by the same engine.
type found struct {
	engine engine.Engine
	verb   *verb.Verb
}

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	var matches []*found
	for _, eng := range options.Engines {
		verbs, err := eng.Search(options.Query)
		if err != nil {
			return fmt.Errorf("search failed for %s: %w", eng.Name(), err)
		}

		for _, v := range verbs {
			matches = append(matches, &found{engine: eng, verb: v})
		}
	}

	var selected []*found
	if options.VerbPicker.IsPresent() {
		picker := options.VerbPicker.MustGet()
		verbs := lo.Map(matches, func(f *found, _ int) *verb.Verb {
			return f.verb
		})

		if choice := picker(verbs); choice != nil {
			f, _ := lo.Find(matches, func(f *found) bool {
				return f.verb == choice
			})
			selected = []*found{f}
		}
	} else {
		selected = matches
	}

	if len(selected) == 0 {
		if options.Json {
			return writeJson(options.Out, nil, options)
		}
		return nil
	}

	query.Remember(options.Query, 1)

	results := make([]*Result, 0, len(selected))
	for _, f := range selected {
		r, err := prepareResult(f, options)
		if err != nil {
			return err
		}
		results = append(results, r)
	}

	if options.Json {
		return writeJson(options.Out, results, options)
	}

	for _, r := range results {
		writeText(options.Out, r)
	}

	return nil
}

func prepareResult(f *found, options *Options) (*Result, error) {
	r := &Result{
		Engine: f.engine.ID(),
		Verb:   f.verb,
	}

	if options.Conjugate {
		conjugation, err := f.engine.Conjugate(f.verb)
		if err != nil {
			return nil, err
		}

		if options.CategoryFilter.IsPresent() {
			filter := options.CategoryFilter.MustGet()
			categories, err := filter(conjugation.Categories)
			if err != nil {
				return nil, err
			}
			conjugation.Categories = categories
		}

		r.Conjugation = conjugation
		history.Save(f.verb, f.engine.ID())
	}

	if options.IncludeJisho {
		entry, err := jisho.FindClosest(f.verb.Dictionary)
		if err != nil {
			log.Warnf("failed to fetch jisho entry for %s: %v", f.verb.Dictionary, err)
		} else {
			r.Jisho = entry
		}
	}

	return r, nil
}

func writeText(out io.Writer, r *Result) {
	fmt.Fprintln(out, r.Verb.String())
	if gloss := r.Verb.Gloss(); gloss != "" {
		fmt.Fprintln(out, gloss)
	}

	if r.Conjugation == nil {
		return
	}

	for _, category := range r.Conjugation.Categories {
		fmt.Fprintln(out)
		fmt.Fprintln(out, category.Name)

		for _, form := range category.Forms {
			line := fmt.Sprintf("  %s: %s", form.Name, form.Value)
			if form.Reading != "" && form.Reading != form.Value {
				line += fmt.Sprintf(" (%s)", form.Reading)
			}
			if form.Romaji != "" {
				line += " " + form.Romaji
			}

			fmt.Fprintln(out, line)
		}
	}
}

func writeJson(out io.Writer, results []*Result, options *Options) error {
	data, err := asJson(results, options.Query)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
