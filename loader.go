package cssusage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrStylesheetNotFound is returned when the target stylesheet does not exist.
var ErrStylesheetNotFound = errors.New("stylesheet not found")

// LoadStylesheet reads the full text of the stylesheet at path.
// A leading byte-order mark is consumed so it never sticks to the first selector.
func LoadStylesheet(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrStylesheetNotFound, path)
		}
		return "", fmt.Errorf("stat stylesheet: %w", err)
	}

	// #nosec G304 - path comes from trusted configuration
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open stylesheet: %w", err)
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	content, err := io.ReadAll(transform.NewReader(file, decoder))
	if err != nil {
		return "", fmt.Errorf("read stylesheet: %w", err)
	}

	return string(content), nil
}
