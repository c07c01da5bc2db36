// Package store persists the catalog graph as a single versioned JSON snapshot.
//
// Every save rewrites the whole graph. Before writing, an existing snapshot is
// renamed to a sibling backup (see fileutil.BackupPath) so a failed write never
// destroys the only copy. A missing or undecodable snapshot loads as an empty
// graph and is reported as a fresh start rather than an error; a snapshot
// written by a newer schema version is refused.
//
// Open takes an advisory lock beside the snapshot for the duration of one
// command so two invocations cannot interleave load and save.
package store
