// Package sparsem holds project-wide metadata shared by the CLI and
// build tooling.
package sparsem

// Version is the sparsem release version.
const Version = "v0.1.0"
