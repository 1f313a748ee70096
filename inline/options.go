// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Neicx/kana-dojo/engine"
	"github.com/Neicx/kana-dojo/util"
	"github.com/Neicx/kana-dojo/verb"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	VerbPicker     func([]*verb.Verb) *verb.Verb
	CategoryFilter func([]verb.Category) ([]verb.Category, error)
)

type Options struct {
	Out            io.Writer
	Engines        []engine.Engine
	IncludeJisho   bool
	Json           bool
	Query          string
	Conjugate      bool
	VerbPicker     mo.Option[VerbPicker]
	CategoryFilter mo.Option[CategoryFilter]
}

// ParseVerbPicker converts a picker description into a selection function.
// Accepted kinds are "first", "last", "exact" and "index".
func ParseVerbPicker(kind, value string) (VerbPicker, error) {
	switch kind {
	case "first":
		return func(verbs []*verb.Verb) *verb.Verb {
			if len(verbs) == 0 {
				return nil
			}
			return verbs[0]
		}, nil
	case "last":
		return func(verbs []*verb.Verb) *verb.Verb {
			if len(verbs) == 0 {
				return nil
			}
			return verbs[len(verbs)-1]
		}, nil
	case "exact":
		return func(verbs []*verb.Verb) *verb.Verb {
			for _, v := range verbs {
				if v.Dictionary == value || v.Reading == value || strings.EqualFold(v.Romaji, value) {
					return v
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(verbs []*verb.Verb) *verb.Verb {
			if len(verbs) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(verbs)-1))
			return verbs[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}

// ParseCategoryFilter converts a filter description into a category filter.
// Format: "all", a comma-separated list of category names, or "@substring@".
func ParseCategoryFilter(description string) (CategoryFilter, error) {
	if description == "" || description == "all" {
		return func(categories []verb.Category) ([]verb.Category, error) {
			return categories, nil
		}, nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 1 {
		sub := description[1 : len(description)-1]
		return func(categories []verb.Category) ([]verb.Category, error) {
			return lo.Filter(categories, func(c verb.Category, _ int) bool {
				return strings.Contains(strings.ToLower(c.Name), strings.ToLower(sub))
			}), nil
		}, nil
	}

	names := lo.Map(strings.Split(description, ","), func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})

	return func(categories []verb.Category) ([]verb.Category, error) {
		filtered := lo.Filter(categories, func(c verb.Category, _ int) bool {
			return lo.Contains(names, strings.ToLower(c.Name))
		})

		if len(filtered) == 0 {
			return nil, fmt.Errorf("no categories match filter: %s", description)
		}

		return filtered, nil
	}, nil
}
