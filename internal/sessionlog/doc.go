// Package sessionlog sends the standard logger to a file and reads it back.
//
// The TUI owns the terminal, so log.Printf output cannot go to stderr while
// it runs. Open points the standard logger at a file using Bubble Tea's
// LogToFile, and Tail reads the last lines of that file for the in-app log
// view using a fixed ring buffer, so memory stays bounded by the line count
// rather than the file size.
package sessionlog
