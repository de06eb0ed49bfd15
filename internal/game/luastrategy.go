package game

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"
)

// ScriptStrategy runs a Lua script to steer the AI snake. The script
// must define
//
//	function next_direction(head, food, dir)
//	    return {dx = 1, dy = 0}
//	end
//
// where head and food are tables with x/y fields and dir has dx/dy.
// Any script error or non-unit return falls back to the wrapped
// strategy, so a broken script degrades to normal pathfinding instead
// of killing the round.
type ScriptStrategy struct {
	source   string
	fallback Strategy
}

func NewScriptStrategy(source string, fallback Strategy) *ScriptStrategy {
	return &ScriptStrategy{source: source, fallback: fallback}
}

// LoadScriptStrategy reads a Lua strategy from disk and verifies it
// compiles and exports next_direction.
func LoadScriptStrategy(path string, fallback Strategy) (*ScriptStrategy, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read strategy script: %w", err)
	}

	luaState := lua.NewState()
	defer luaState.Close()
	if err := luaState.DoString(string(source)); err != nil {
		return nil, fmt.Errorf("failed to load strategy script %s: %w", path, err)
	}
	if _, ok := luaState.GetGlobal("next_direction").(*lua.LFunction); !ok {
		return nil, fmt.Errorf("strategy script %s does not define next_direction", path)
	}

	return NewScriptStrategy(string(source), fallback), nil
}

func (ss *ScriptStrategy) NextDirection(s *Snake, r *Round) Direction {
	d, err := ss.scriptedDirection(s, r)
	if err != nil {
		log.Warn("Lua strategy failed, falling back", "error", err)
		return ss.fallback.NextDirection(s, r)
	}
	return d
}

func (ss *ScriptStrategy) scriptedDirection(s *Snake, r *Round) (Direction, error) {
	luaState := lua.NewState()
	defer luaState.Close()

	if err := luaState.DoString(ss.source); err != nil {
		return 0, fmt.Errorf("could not load script: %w", err)
	}

	fn, ok := luaState.GetGlobal("next_direction").(*lua.LFunction)
	if !ok {
		return 0, fmt.Errorf("next_direction is not a function")
	}

	dx, dy := s.Direction.Delta()
	err := luaState.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true},
		cellToLuaTable(luaState, s.Head()),
		cellToLuaTable(luaState, r.Food),
		deltaToLuaTable(luaState, dx, dy),
	)
	if err != nil {
		return 0, fmt.Errorf("script call failed: %w", err)
	}

	ret, ok := luaState.Get(-1).(*lua.LTable)
	if !ok {
		return 0, fmt.Errorf("script returned %s, expected table", luaState.Get(-1).Type())
	}
	luaState.Pop(1)

	rdx := int(lua.LVAsNumber(ret.RawGetString("dx")))
	rdy := int(lua.LVAsNumber(ret.RawGetString("dy")))
	d, ok := DirectionFromDelta(rdx, rdy)
	if !ok {
		return 0, fmt.Errorf("script returned non-unit step (%d,%d)", rdx, rdy)
	}
	return d, nil
}

func cellToLuaTable(luaState *lua.LState, c Cell) *lua.LTable {
	tbl := luaState.NewTable()
	tbl.RawSetString("x", lua.LNumber(c.X))
	tbl.RawSetString("y", lua.LNumber(c.Y))
	return tbl
}

func deltaToLuaTable(luaState *lua.LState, dx, dy int) *lua.LTable {
	tbl := luaState.NewTable()
	tbl.RawSetString("dx", lua.LNumber(dx))
	tbl.RawSetString("dy", lua.LNumber(dy))
	return tbl
}
