package dictionary

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ErrDataUnavailable means the word list could not be read or parsed.
// Nothing can be served without it.
var ErrDataUnavailable = errors.New("dictionary data unavailable")

//go:embed data/words.json
var bundledWords []byte

// Load reads the word list at path, or the bundled list when path is empty.
// Any failure is wrapped in ErrDataUnavailable.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		log.Debug("Loading bundled word list")
		return LoadBytes(bundledWords, FormatJSON)
	}

	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrDataUnavailable, path, err)
	}

	log.Debugf("Loading %s from %s", format, path)
	return LoadBytes(data, format)
}

// LoadBytes builds a Dictionary from raw data in the given format.
func LoadBytes(data []byte, format FileFormat) (*Dictionary, error) {
	entries, err := decodeWords(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	dict := New(entries)
	if dict.Len() == 0 {
		return nil, fmt.Errorf("%w: word list has no %d letter words", ErrDataUnavailable, WordLength)
	}
	return dict, nil
}

// Export writes every word to path, picking the format from its extension.
func (d *Dictionary) Export(path string) error {
	format, err := DetectFileFormat(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return d.writeTo(file, path, format)
}

// writeTo encodes the words into w and closes it, reporting the close error too.
func (d *Dictionary) writeTo(w io.WriteCloser, path string, format FileFormat) (err error) {
	defer func() {
		if cerr := w.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := encodeWords(w, d.words, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Debugf("Exported %d words to %s as %s", d.Len(), path, format)
	return nil
}
