// Package custom provides a bridge between the Go core and Lua-based conjugation engines.
package custom

import (
	"fmt"
	"strings"

	"github.com/Neicx/kana-dojo/verb"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// Helper to get string from table with default
func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return val.String()
	}
	return ""
}

// Helper to get string list from table (comma-separated or table)
func getStringList(table *lua.LTable, key string) []string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return lo.Map(strings.Split(val.String(), ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
	}
	if val.Type() == lua.LTTable {
		var list []string
		val.(*lua.LTable).ForEach(func(_, v lua.LValue) {
			if v.Type() == lua.LTString {
				list = append(list, v.String())
			}
		})
		return list
	}
	return nil
}

func verbFromTable(table *lua.LTable) (*verb.Verb, error) {
	dictionary := getString(table, "dictionary")
	if dictionary == "" {
		return nil, fmt.Errorf("verb must have a dictionary form")
	}

	reading := getString(table, "reading")
	if reading == "" {
		reading = dictionary
	}

	return &verb.Verb{
		Dictionary: dictionary,
		Reading:    reading,
		Romaji:     getString(table, "romaji"),
		Class:      verb.Class(getString(table, "class")),
		Meanings:   getStringList(table, "meanings"),
	}, nil
}

func formFromTable(table *lua.LTable) (verb.Form, error) {
	name := getString(table, "name")
	value := getString(table, "value")

	if name == "" || value == "" {
		return verb.Form{}, fmt.Errorf("form must have name and value")
	}

	return verb.Form{
		Name:    name,
		Value:   value,
		Reading: getString(table, "reading"),
		Romaji:  getString(table, "romaji"),
	}, nil
}

func categoryFromTable(table *lua.LTable) (verb.Category, error) {
	name := getString(table, "name")
	if name == "" {
		return verb.Category{}, fmt.Errorf("category must have a name")
	}

	formsVal := table.RawGetString("forms")
	if formsVal.Type() != lua.LTTable {
		return verb.Category{}, fmt.Errorf("category %s must have a forms table", name)
	}

	category := verb.Category{Name: name}
	var errs []error

	formsVal.(*lua.LTable).ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return
		}

		form, err := formFromTable(v.(*lua.LTable))
		if err != nil {
			errs = append(errs, err)
			return
		}

		category.Forms = append(category.Forms, form)
	})

	if len(category.Forms) == 0 {
		if len(errs) > 0 {
			return verb.Category{}, errs[0]
		}
		return verb.Category{}, fmt.Errorf("category %s has no forms", name)
	}

	return category, nil
}

func verbToTable(L *lua.LState, v *verb.Verb) *lua.LTable {
	table := L.NewTable()
	table.RawSetString("dictionary", lua.LString(v.Dictionary))
	table.RawSetString("reading", lua.LString(v.Reading))
	table.RawSetString("romaji", lua.LString(v.Romaji))
	table.RawSetString("class", lua.LString(string(v.Class)))
	return table
}
