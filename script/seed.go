package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/railgrid/grid"
)

// Result summarizes a seed run.
type Result struct {
	Painted int
}

// RunFile loads a tengo script from disk and runs it against g.
func RunFile(path string, g *grid.Grid) (Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read seed script %s: %w", path, err)
	}
	res, err := Run(src, g)
	if err != nil {
		return res, fmt.Errorf("seed script %s: %w", path, err)
	}
	return res, nil
}

// Run executes a seed script once. The script sees:
//
//	world_size        cells per side
//	paint(x, y, name) set a cell to "empty", "rail", "building" or "station"
//	tile(x, y)        the lower-case name of a cell's state
//
// A failed paint or tile call stops the script and is returned as the error.
func Run(src []byte, g *grid.Grid) (Result, error) {
	var (
		res     Result
		callErr error
	)
	fail := func(err error) (tengo.Object, error) {
		callErr = err
		return nil, err
	}

	paint := &tengo.UserFunction{Name: "paint", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, y, err := cellArgs(args)
		if err != nil {
			return fail(err)
		}
		name, ok := tengo.ToString(args[2])
		if !ok {
			return fail(fmt.Errorf("paint: state must be a string, got %s", args[2].TypeName()))
		}
		state, err := grid.ParseTileState(name)
		if err != nil {
			return fail(fmt.Errorf("paint: %w", err))
		}
		if err := g.Set(x, y, state); err != nil {
			return fail(fmt.Errorf("paint: %w", err))
		}
		res.Painted++
		return tengo.TrueValue, nil
	}}

	tile := &tengo.UserFunction{Name: "tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, y, err := cellArgs(args)
		if err != nil {
			return fail(err)
		}
		state, err := g.Get(x, y)
		if err != nil {
			return fail(fmt.Errorf("tile: %w", err))
		}
		return &tengo.String{Value: strings.ToLower(state.String())}, nil
	}}

	s := tengo.NewScript(src)
	_ = s.Add("world_size", g.Size())
	_ = s.Add("paint", paint)
	_ = s.Add("tile", tile)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return res, fmt.Errorf("compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		if callErr != nil {
			return res, callErr
		}
		return res, err
	}
	return res, nil
}

func cellArgs(args []tengo.Object) (int, int, error) {
	x, okX := tengo.ToInt(args[0])
	y, okY := tengo.ToInt(args[1])
	if !okX || !okY {
		return 0, 0, fmt.Errorf("cell coordinates must be numbers, got %s, %s", args[0].TypeName(), args[1].TypeName())
	}
	return x, y, nil
}
