package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName turns a song title into a directory name. Text is NFC
// normalized so the same title typed on different platforms maps to one
// directory. Slashes, backslashes, colons, and asterisks become dashes; other
// unsafe characters are removed. Trailing dots are dropped because Windows
// cannot open such paths. "." and ".." collapse to "".
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		return ""
	}
	name = strings.TrimSpace(fileNameReplacer.Replace(name))
	name = strings.TrimRight(name, ". ")
	return name
}
