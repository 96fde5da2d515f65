package base

import (
	"github.com/specialistvlad/builtintour/internal/protect"
	"github.com/specialistvlad/builtintour/internal/varargs"
)

// protectCall calls f with the remaining arguments in protected mode and
// returns the status followed by f's results or the raised value.
func protectCall(args varargs.Pack) ([]any, error) {
	f, err := args.CheckFunction(1, "protect")
	if err != nil {
		return nil, err
	}
	rest, _ := args.Select(2)
	ok, results := protect.Call(func() ([]any, error) {
		return f.Call(rest...)
	})
	return append([]any{ok}, results...), nil
}

// protectWith is protectCall with a message handler: on failure the
// handler's first result replaces the raised value.
func protectWith(args varargs.Pack) ([]any, error) {
	f, err := args.CheckFunction(1, "protectwith")
	if err != nil {
		return nil, err
	}
	handler, err := args.CheckFunction(2, "protectwith")
	if err != nil {
		return nil, err
	}
	rest, _ := args.Select(3)
	ok, results := protect.CallWithHandler(
		func() ([]any, error) {
			return f.Call(rest...)
		},
		func(raised any) (any, error) {
			out, err := handler.Call(raised)
			if err != nil || len(out) == 0 {
				return nil, err
			}
			return out[0], nil
		},
	)
	return append([]any{ok}, results...), nil
}

// raise raises its first argument as a failure value.
func raise(args varargs.Pack) ([]any, error) {
	return nil, protect.Raise(args.Arg(1))
}
