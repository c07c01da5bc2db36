// Package main hosts the talknotes CLI entrypoint.
//
// A single Cobra command takes the metadata snapshot path and the notes
// database root, then runs exactly one of the mutually exclusive command
// flags against the loaded graph. Mutating commands rewrite the snapshot on
// success; read-only commands never touch it.
//
// Keep this package lean: people, talks and notes live in the internal
// packages and this layer only parses flags, wires collaborators, and renders
// console output.
package main
