package assets

import (
	"embed"
	"io"
	"io/fs"
)

//go:embed dictionary.txt answers.txt sql/*.sql
var FS embed.FS

// Dictionary opens the embedded "WORD FREQUENCY" list.
func Dictionary() (io.ReadCloser, error) {
	return FS.Open("dictionary.txt")
}

// Answers opens the embedded answer list.
func Answers() (io.ReadCloser, error) {
	return FS.Open("answers.txt")
}

// Migrations returns the embedded sql directory.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
