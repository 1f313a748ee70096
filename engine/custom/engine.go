// Package custom provides a bridge between the Go core and Lua-based conjugation engines.
package custom

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

type luaEngine struct {
	name  string
	state *lua.LState
}

func newLuaEngine(name string, state *lua.LState) *luaEngine {
	return &luaEngine{
		name:  name,
		state: state,
	}
}

// Name returns the engine name.
func (e *luaEngine) Name() string {
	return e.name
}

// ID returns the engine ID.
func (e *luaEngine) ID() string {
	return IDfromName(e.name) // Defined in loader.go
}

// call executes a global Lua function safely.
func (e *luaEngine) call(fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	luaFn := e.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := e.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)

	if err != nil {
		return nil, err
	}

	retval := e.state.Get(-1)
	e.state.Pop(1) // Clean stack

	if retval.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), retType)
	}

	return retval, nil
}
