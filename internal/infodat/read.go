package infodat

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tidwall/jsonc"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"beatinfo/internal/jsonnode"
)

// ReadDocument loads and parses a JSON file the way level packages are found
// in the wild: a UTF-8 or UTF-16 byte order mark is honoured, and comments
// and trailing commas are stripped before parsing. A missing file yields a
// *NotFoundError; unreadable or unparseable content a *CorruptError.
func ReadDocument(path string) (*jsonnode.Node, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &CorruptError{Path: path, Err: fmt.Errorf("open: %w", err)}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, &CorruptError{Path: path, Err: fmt.Errorf("stat: %w", err)}
	}
	if info.IsDir() {
		return nil, &CorruptError{Path: path, Err: errors.New("is a directory")}
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(file, decoder))
	if err != nil {
		return nil, &CorruptError{Path: path, Err: fmt.Errorf("read: %w", err)}
	}

	doc, err := jsonnode.Parse(jsonc.ToJSON(data))
	if err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	return doc, nil
}
