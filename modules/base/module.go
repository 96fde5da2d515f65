// Package base provides the general-purpose built-ins: printing, type
// inspection and conversion, raw table access, traversal, fallback
// resolvers, protected calls and expression loading.
package base

import (
	"io"
	"os"

	"github.com/specialistvlad/builtintour/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Out receives the output of print. Nil means standard output.
	Out io.Writer
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}

	r.Register("print", printTo(out))
	r.Register("type", typeOf)
	r.Register("tostring", toString)
	r.Register("tonumber", toNumber)
	r.Register("select", selectArgs)
	r.Register("assert", assertArgs)
	r.Register("pack", pack)
	r.Register("unpack", unpack)

	r.Register("rawget", rawGet)
	r.Register("rawset", rawSet)
	r.Register("rawequal", rawEqual)
	r.Register("rawlen", rawLen)
	r.Register("index", index)
	r.Register("next", next)
	r.Register("pairs", pairs(r))
	r.Register("ipairs", ipairs)
	r.Register("setfallback", setFallback)
	r.Register("getfallback", getFallback)

	r.Register("protect", protectCall)
	r.Register("protectwith", protectWith)
	r.Register("raise", raise)

	r.Register("load", load(r))
}
