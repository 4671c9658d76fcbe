// Package domain contains the sentinel errors shared by the ezladder packages.
//
// This package represents the innermost layer of the module. It has no
// dependencies on infrastructure concerns (file system, logging, terminal
// output) and is imported by both the public pkg/ packages and the internal
// CLI plumbing so that errors.Is works across layers.
package domain
