// Package types defines the results garnix commands hand to the renderers,
// and the Command value shared by the nix layer and the output.
package types
