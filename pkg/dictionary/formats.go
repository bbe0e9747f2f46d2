package dictionary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// FileFormat represents different word list file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatJSON               // JSON array of strings
	FormatText               // One word per line
	FormatMsgpack            // msgpack array of strings
)

// FormatInfo contains metadata about a word list format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON Word List",
		Extensions:  []string{".json"},
	},
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt"},
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "Msgpack Word List",
		Extensions:  []string{".msgpack", ".bin"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFileFormat picks a format from the file extension
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, candidate := range info.Extensions {
			if ext == candidate {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// decodeWords parses raw word list data in the given format
func decodeWords(data []byte, format FileFormat) ([]string, error) {
	switch format {
	case FormatJSON:
		var words []string
		if err := json.Unmarshal(data, &words); err != nil {
			return nil, fmt.Errorf("failed to parse JSON word list: %w", err)
		}
		return words, nil
	case FormatMsgpack:
		var words []string
		if err := msgpack.Unmarshal(data, &words); err != nil {
			return nil, fmt.Errorf("failed to parse msgpack word list: %w", err)
		}
		return words, nil
	case FormatText:
		return readTextWords(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unknown format: %v", format)
}

// readTextWords reads one word per line, skipping blanks and '#' comments
func readTextWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text word list: %w", err)
	}
	return words, nil
}

// encodeWords writes words in the given format
func encodeWords(w io.Writer, words []string, format FileFormat) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(words)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(words)
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, word := range words {
			if _, err := bw.WriteString(word + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()
	}
	return fmt.Errorf("unknown format: %v", format)
}
