// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the tour lifecycle: registering built-ins,
// loading manifests, selecting suites and running them, decoupled from any
// specific entrypoint like a CLI.
package app
