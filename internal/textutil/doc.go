// Package textutil provides name handling shared by the catalog and the CLI.
//
// The primary use cases are:
//   - Splitting person names into index tokens
//   - Deriving the per-person folder name used as a storage key
//   - Title-casing stored lowercase names for display
//
// Names are stored lowercase; callers lowercase before handing names to the
// catalog so lookups and folder names stay stable across invocations.
package textutil
