package script

import (
	"github.com/dop251/goja"

	"github.com/tilewright/mapformat/format"
	"github.com/tilewright/mapformat/tilemap"
)

// Install exposes the host's map format bindings on the environment's
// global object:
//
//	registerMapFormat(shortName, descriptor)
//	unregisterMapFormat(shortName)
//	new TileMap(width, height, tileWidth, tileHeight)
//
// registerMapFormat validates the descriptor and adds the resulting
// format to reg; an invalid descriptor or duplicate short name throws a
// TypeError, and nothing is registered. A format stays registered
// exactly until unregisterMapFormat (or a host-side Remove) drops it.
func Install(env *Env, reg *format.Registry) error {
	vm := env.vm

	register := func(call goja.FunctionCall) goja.Value {
		shortName := stringOf(call.Argument(0))
		if shortName == "" {
			panic(vm.NewTypeError("registerMapFormat: short name must be a non-empty string"))
		}
		f, err := NewFormat(env, shortName, call.Argument(1))
		if err != nil {
			panic(vm.NewTypeError(err.Error()))
		}
		if err := reg.Add(f); err != nil {
			panic(vm.NewTypeError(err.Error()))
		}
		return goja.Undefined()
	}
	if err := vm.Set("registerMapFormat", register); err != nil {
		return err
	}

	unregister := func(call goja.FunctionCall) goja.Value {
		if f, ok := reg.Get(stringOf(call.Argument(0))); ok {
			reg.Remove(f)
		}
		return goja.Undefined()
	}
	if err := vm.Set("unregisterMapFormat", unregister); err != nil {
		return err
	}

	newTileMap := func(call goja.ConstructorCall) *goja.Object {
		width := int(call.Argument(0).ToInteger())
		height := int(call.Argument(1).ToInteger())
		tileWidth := int(call.Argument(2).ToInteger())
		tileHeight := int(call.Argument(3).ToInteger())
		view := NewMapView(env, tilemap.NewMap(width, height, tileWidth, tileHeight))
		return vm.ToValue(view).ToObject(vm)
	}
	return vm.Set("TileMap", newTileMap)
}
