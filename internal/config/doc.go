// Package config defines the format-agnostic model of tour manifests and the
// Loader interface that reads them.
//
// A manifest declares extra suites of entries to run after (or instead of)
// the built-in ones. Concrete loaders live in separate packages: HCL in
// internal/hcl and YAML in internal/yamlconf. ByExtension combines them so a
// caller can pass any mix of files and directories.
package config
