// Package testutil provides utilities for testing garnix components.
//
// Key components:
//   - MockRunner: testify mock of executor.Runner, keyed by program and args
//   - FileTree and NewRepo: temporary repositories with a flake and config
//
// Tests must not spawn nix. Collaborators take an executor.Runner and tests
// hand them a MockRunner.
package testutil
