// Package tour assembles the suites the runner executes: the built-in
// "basic" and "math" demonstrations and the suites declared in manifests.
//
// Every entry is stateless. Tables used by an entry are created inside its
// action, so running a suite twice prints the same lines apart from the
// entries marked volatile.
package tour
