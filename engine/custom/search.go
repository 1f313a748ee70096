// Package custom provides a bridge between the Go core and Lua-based conjugation engines.
package custom

import (
	"github.com/Neicx/kana-dojo/constant"
	"github.com/Neicx/kana-dojo/internal/cache"
	"github.com/Neicx/kana-dojo/verb"
	lua "github.com/yuin/gopher-lua"
)

// Search asks the Lua script to find verbs matching the query.
func (e *luaEngine) Search(query string) ([]*verb.Verb, error) {
	cacheKey := cache.GenerateKey(query, e.Name())
	var cachedVerbs []*verb.Verb
	if cache.Read(cacheKey, &cachedVerbs) {
		return cachedVerbs, nil
	}

	val, err := e.call(constant.SearchVerbsFn, lua.LTTable, lua.LString(query))
	if err != nil {
		return nil, err
	}

	table := val.(*lua.LTable)
	var verbs []*verb.Verb

	var errs []error
	table.ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return // Skip invalid entries
		}

		parsed, err := verbFromTable(v.(*lua.LTable))
		if err != nil {
			errs = append(errs, err)
			return
		}

		verbs = append(verbs, parsed)
	})

	if len(verbs) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}

	if len(verbs) > 0 {
		_ = cache.Write(cacheKey, verbs)
	}

	return verbs, nil
}
