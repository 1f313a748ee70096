// Package custom provides a bridge between the Go core and Lua-based conjugation engines.
package custom

import (
	"fmt"

	"github.com/Neicx/kana-dojo/constant"
	"github.com/Neicx/kana-dojo/internal/cache"
	"github.com/Neicx/kana-dojo/verb"
	lua "github.com/yuin/gopher-lua"
)

// Conjugate asks the Lua script for the complete conjugation table of a verb.
func (e *luaEngine) Conjugate(v *verb.Verb) (*verb.Conjugation, error) {
	cacheKey := cache.GenerateKey(v.Dictionary, e.Name()+"_conjugation")
	var cachedCategories []verb.Category
	if cache.Read(cacheKey, &cachedCategories) {
		return &verb.Conjugation{
			Verb:       v,
			Categories: cachedCategories,
			EngineID:   e.ID(),
		}, nil
	}

	val, err := e.call(constant.ConjugateVerbFn, lua.LTTable, verbToTable(e.state, v))
	if err != nil {
		return nil, err
	}

	table := val.(*lua.LTable)
	var categories []verb.Category
	var errs []error

	table.ForEach(func(k, value lua.LValue) {
		if k.Type() != lua.LTNumber || value.Type() != lua.LTTable {
			return
		}

		category, err := categoryFromTable(value.(*lua.LTable))
		if err != nil {
			errs = append(errs, err)
			return
		}

		categories = append(categories, category)
	})

	if len(categories) == 0 {
		if len(errs) > 0 {
			return nil, errs[0]
		}
		return nil, fmt.Errorf("engine %s produced no forms for %s", e.Name(), v.Dictionary)
	}

	_ = cache.Write(cacheKey, categories)

	return &verb.Conjugation{
		Verb:       v,
		Categories: categories,
		EngineID:   e.ID(),
	}, nil
}
