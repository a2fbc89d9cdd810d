// Package scripting hosts the embedded Lua hook. Scripts are loaded once at
// setup and their registered tick handlers run once per frame in Normal
// mode, with a bound API table through which they may spawn and query
// entities. Script errors are logged and skipped; a bad script never takes
// the session down mid-frame.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Sim is the simulation surface exposed to scripts. The frame loop passes
// an adapter over the live session each frame.
type Sim interface {
	SpawnCollectible(x, y float64)
	SpawnHazard(x, y float64)
	PlayerPos() (x, y float64)
	Score() int
	Health() int
	EntityCount() int
	WorldSize() (w, h float64)
}

// Engine wraps a single gopher-lua VM. Single-goroutine access only (frame
// loop).
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	handlers []*lua.LFunction
	api      *lua.LTable
	current  Sim // bound only for the duration of ExecuteAll
}

// NewEngine creates a Lua engine and loads all scripts under scriptsDir:
// .lua files in the directory itself, then in each immediate subdirectory,
// in name order. A missing directory yields an engine with no scripts; a
// script that fails to load is fatal.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	e.api = e.buildAPI()
	vm.SetGlobal("register_tick", vm.NewFunction(e.luaRegisterTick))

	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	entries, err := os.ReadDir(scriptsDir)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if err := e.loadDir(filepath.Join(scriptsDir, entry.Name())); err != nil {
				vm.Close()
				return nil, fmt.Errorf("load %s scripts: %w", entry.Name(), err)
			}
		}
	}

	log.Info("lua scripts loaded", zap.Int("tick_handlers", len(e.handlers)))
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// luaRegisterTick implements the register_tick(fn) global scripts call at
// load time to subscribe to the per-frame hook.
func (e *Engine) luaRegisterTick(L *lua.LState) int {
	fn := L.CheckFunction(1)
	e.handlers = append(e.handlers, fn)
	return 0
}

// HandlerCount returns the number of registered tick handlers.
func (e *Engine) HandlerCount() int {
	return len(e.handlers)
}

// ExecuteAll runs every registered tick handler once, passing the bound API
// table. Called once per frame in Normal mode. Handlers run to completion
// before rendering; a handler error is logged and the remaining handlers
// still run.
func (e *Engine) ExecuteAll(sim Sim) {
	e.current = sim
	defer func() { e.current = nil }()

	for _, fn := range e.handlers {
		if err := e.vm.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, e.api); err != nil {
			e.log.Error("lua tick handler error", zap.Error(err))
		}
	}
}

// buildAPI constructs the table of Go closures handed to every tick
// handler. Each closure resolves the bound sim at call time, so the table
// is built once and reused every frame.
func (e *Engine) buildAPI() *lua.LTable {
	t := e.vm.NewTable()

	bind := func(name string, fn lua.LGFunction) {
		t.RawSetString(name, e.vm.NewFunction(fn))
	}

	bind("spawn_collectible", func(L *lua.LState) int {
		e.mustSim(L).SpawnCollectible(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
		return 0
	})
	bind("spawn_hazard", func(L *lua.LState) int {
		e.mustSim(L).SpawnHazard(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
		return 0
	})
	bind("player_pos", func(L *lua.LState) int {
		x, y := e.mustSim(L).PlayerPos()
		L.Push(lua.LNumber(x))
		L.Push(lua.LNumber(y))
		return 2
	})
	bind("score", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.mustSim(L).Score()))
		return 1
	})
	bind("health", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.mustSim(L).Health()))
		return 1
	})
	bind("entity_count", func(L *lua.LState) int {
		L.Push(lua.LNumber(e.mustSim(L).EntityCount()))
		return 1
	})
	bind("world_size", func(L *lua.LState) int {
		w, h := e.mustSim(L).WorldSize()
		L.Push(lua.LNumber(w))
		L.Push(lua.LNumber(h))
		return 2
	})

	return t
}

// mustSim returns the bound sim or raises a Lua error when a handler leaks
// the API table and calls it outside a tick.
func (e *Engine) mustSim(L *lua.LState) Sim {
	if e.current == nil {
		L.RaiseError("sim API called outside a tick")
	}
	return e.current
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
