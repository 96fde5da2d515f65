// Package registry provides the namespace of built-in operations.
//
// The Registry maps names such as "type" or "math.floor" to the functions and
// constants that implement them. It replaces an ambient global environment:
// modules populate an explicit Registry at startup, after which it is only
// read. Callers that need a built-in look it up through the Registry they
// were given.
//
// Registering the same name twice is a programmer error and panics, so a
// mismatch between modules surfaces at startup rather than during a tour.
package registry
