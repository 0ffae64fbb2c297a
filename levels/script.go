package levels

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

// ScriptResult counts what a level script did.
type ScriptResult struct {
	Placed  int
	Skipped int
}

// RunScriptFile loads a script from prefabs/scripts and runs it against w.
func RunScriptFile(w *obj.World, name string) (ScriptResult, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return ScriptResult{}, fmt.Errorf("levels: load script %s: %w", name, err)
	}
	return RunScript(w, src)
}

// RunScript executes a tengo program that lays out entities. The program sees
// the world size as `width` and `height`, the grid size as `tile`, and calls
//
//	place(kind, x, y [, opts])  // opts: {dir, color, sprite, w, h}
//	tile_at(x, y)
//
// place goes through World.Place, so blocked placements are skipped and
// reported with a false return. Unknown kinds or bad options abort the run.
func RunScript(w *obj.World, src []byte) (ScriptResult, error) {
	var res ScriptResult

	script := tengo.NewScript(src)
	_ = script.Add("width", w.Width)
	_ = script.Add("height", w.Height)
	_ = script.Add("tile", common.TileSize)
	_ = script.Add("place", &tengo.UserFunction{Name: "place", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p, err := scriptParams(args)
		if err != nil {
			return nil, err
		}
		e, err := obj.New(p)
		if err != nil {
			return nil, err
		}
		if err := w.Place(e); err != nil {
			var inv *obj.InvariantError
			if errors.Is(err, obj.ErrPlacementBlocked) || errors.Is(err, obj.ErrCellOccupied) ||
				errors.Is(err, obj.ErrOutOfBounds) || errors.Is(err, obj.ErrDuplicatePlayer) || errors.As(err, &inv) {
				res.Skipped++
				return tengo.FalseValue, nil
			}
			return nil, err
		}
		res.Placed++
		return tengo.TrueValue, nil
	}})
	_ = script.Add("tile_at", &tengo.UserFunction{Name: "tile_at", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, ok1 := tengo.ToFloat64(args[0])
		y, ok2 := tengo.ToFloat64(args[1])
		if !ok1 || !ok2 {
			return tengo.FalseValue, nil
		}
		if w.TileAt(x, y) != nil {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return res, fmt.Errorf("levels: compile script: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return res, fmt.Errorf("levels: run script: %w", err)
	}
	return res, nil
}

func scriptParams(args []tengo.Object) (obj.Params, error) {
	if len(args) < 3 || len(args) > 4 {
		return obj.Params{}, tengo.ErrWrongNumArguments
	}
	kind, ok := tengo.ToString(args[0])
	if !ok {
		return obj.Params{}, tengo.ErrInvalidArgumentType{Name: "kind", Expected: "string", Found: args[0].TypeName()}
	}
	x, ok := tengo.ToFloat64(args[1])
	if !ok {
		return obj.Params{}, tengo.ErrInvalidArgumentType{Name: "x", Expected: "number", Found: args[1].TypeName()}
	}
	y, ok := tengo.ToFloat64(args[2])
	if !ok {
		return obj.Params{}, tengo.ErrInvalidArgumentType{Name: "y", Expected: "number", Found: args[2].TypeName()}
	}

	p := obj.Params{Kind: obj.Kind(kind), X: x, Y: y}
	if len(args) == 4 {
		opts, ok := objectToAny(args[3]).(map[string]any)
		if !ok {
			return obj.Params{}, tengo.ErrInvalidArgumentType{Name: "opts", Expected: "map", Found: args[3].TypeName()}
		}
		p.Dir = intOpt(opts["dir"])
		p.W = intOpt(opts["w"])
		p.H = intOpt(opts["h"])
		p.Color, _ = opts["color"].(string)
		p.Sprite, _ = opts["sprite"].(string)
	}
	return p, nil
}

func intOpt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return common.Round(n)
	}
	return 0
}

func objectToAny(o tengo.Object) any {
	switch v := o.(type) {
	case nil:
		return nil
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
