// Package codewarden provides the command-line interface for the codewarden
// tool. It configures subcommands (analyze, rules, config, completion),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/codewarden/codewarden/cmd/codewarden"
//	func main() { codewarden.Execute() }
package codewarden
