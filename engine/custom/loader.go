// Package custom provides a bridge between the Go core and Lua-based conjugation engines.
package custom

import (
	"fmt"

	"github.com/Neicx/kana-dojo/constant"
	"github.com/Neicx/kana-dojo/internal/script"
	"github.com/Neicx/kana-dojo/util"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName generates a canonical engine identifier for a given Lua script basename.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadEngine initializes a Lua engine by executing and validating its script.
func LoadEngine(path string) (*luaEngine, error) {
	state := lua.NewState()
	libs.Preload(state)

	// Load and compile the Lua script (using cache if available).
	err := script.PreCompileAndLoad(state, path)
	if err != nil {
		return nil, err
	}

	name := util.FileStem(path)

	// Validation
	required := []string{
		constant.SearchVerbsFn,
		constant.ConjugateVerbFn,
	}

	for _, fn := range required {
		if state.GetGlobal(fn).Type() != lua.LTFunction {
			return nil, fmt.Errorf("function %s is required but not defined in %s", fn, name)
		}
	}

	return newLuaEngine(name, state), nil
}
