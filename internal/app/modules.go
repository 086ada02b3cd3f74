package app

import (
	"github.com/specialistvlad/bundlegrid/internal/registry"
	"github.com/specialistvlad/bundlegrid/modules/commonjs"
	"github.com/specialistvlad/bundlegrid/modules/resolve"
	"github.com/specialistvlad/bundlegrid/modules/terser"
	"github.com/specialistvlad/bundlegrid/modules/typescript"
	"github.com/specialistvlad/bundlegrid/modules/visualizer"
)

// coreModules is the definitive list of all plugin modules that are compiled
// into the bundlegrid binary.
var coreModules = []registry.Module{
	&typescript.Module{},
	&resolve.Module{},
	&commonjs.Module{},
	&terser.Module{},
	&visualizer.Module{},
}
