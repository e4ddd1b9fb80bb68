// Package file provides a TOML-backed implementation of the ConfigStore
// port. Configuration lives in ~/.texpilot/config.toml and nested
// tables are flattened to dot-notation keys, so
//
//	[terms]
//	persist = true
//
// is read as terms.persist.
package file
