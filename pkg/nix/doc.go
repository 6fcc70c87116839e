// Package nix talks to the nix command line for a flake: it lists the
// flake's outputs, asks for the current system and builds attributes.
//
// Every process goes through an executor.Runner. The decisions about which
// attributes exist and which to build live in the flake and matcher
// packages.
package nix
