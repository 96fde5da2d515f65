package app

import (
	"io"

	"github.com/specialistvlad/builtintour/internal/registry"
	"github.com/specialistvlad/builtintour/modules/base"
	"github.com/specialistvlad/builtintour/modules/mathlib"
	"github.com/specialistvlad/builtintour/modules/oslib"
)

// CoreModules is the definitive list of all modules that are compiled into
// the builtintour binary. print writes to outW, next to the tour's lines.
func CoreModules(outW io.Writer, seed uint64) []registry.Module {
	return []registry.Module{
		&base.Module{Out: outW},
		&mathlib.Module{Seed: seed},
		&oslib.Module{},
	}
}
