// Package editor runs the user's external text editor.
//
// The command line comes from configuration (see config.EditorCommand) and is
// split with shell quoting rules, so values like "code --wait" or
// `"/Applications/Sublime Text/subl" -w` work. The editor inherits the
// terminal and the process blocks until it exits; there is no timeout.
package editor
