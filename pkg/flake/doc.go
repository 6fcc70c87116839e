// Package flake turns the output of `nix flake show --json` into the flat list
// of attribute paths garnix can build.
//
// The document is held as a small tree of Mapping, Sequence and Scalar nodes.
// Mapping keys keep the order they had in the JSON text, so Extract reports
// attributes in document order.
//
// An attribute is emitted for every node classified as Buildable:
//
//   - a mapping whose "type" is "derivation" or "nixos-configuration"
//   - a mapping without "type" whose values are all non-mappings
//   - any child of darwinConfigurations or homeConfigurations
//
// Subtrees for platforms other than the running system are skipped at the
// second path segment, so packages.aarch64-linux is never walked on an
// x86_64-linux machine.
//
// Nothing in this package performs I/O.
package flake
