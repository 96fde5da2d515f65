// Package hcl provides the HCL implementation of the config.Loader
// interface. It parses manifest files, decodes their `suite` and `entry`
// blocks with gohcl and translates them into the format-agnostic model.
package hcl
