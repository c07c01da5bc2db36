// Package notes extracts structured fields from the free-text talk notes a
// user writes in their editor.
//
// Notes loosely follow the template produced by Template:
//
//	Year: 2023, month: 5, day: 1;
//	Title: ...
//	Venue: ...
//	Notes: ...
//
// Parsing is permissive. Each field is located by its marker and read up to
// its delimiter; a field that cannot be read falls back on its own without
// affecting the others, and Parse never fails.
package notes
