// Package notebook implements the talk authoring flows: adding a talk and
// (re)editing its note file through the external editor.
//
// Each person owns a folder named after catalog.Person.FolderName under the
// database root, holding one "<talk id>.txt" note per talk. After every edit
// the note is parsed and the talk's date, title, and venue are overwritten
// with the parsed values.
//
// When a new note cannot be written to its folder, it is written to a
// timestamp-named file in the database root, then in the working directory.
// The path finally used is reported so the user can recover the entry.
package notebook
