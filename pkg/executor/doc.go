// Package executor runs external programs.
//
// It is the only package that spawns processes. Collaborators that need git
// or nix depend on the Runner interface so tests can substitute a mock.
package executor
