// Package gen renders the structure-of-arrays companion types of Go struct
// types.
//
// Load type-checks packages with golang.org/x/tools/go/packages, FromPackage
// turns the selected structs into Records, and Generate executes the
// templates and formats the result. The generated code depends only on the
// runtime package at RuntimePath.
package gen
