package files

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/tabpad/tabpad-cli/pkg/models"
)

// ErrNotRepresentable is returned when content cannot be expressed in the
// target codec. The caller must leave the document untouched.
var ErrNotRepresentable = errors.New("content not representable in target encoding")

// Byte-order marks checked during detection, longest first.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding inspects a leading byte-order mark and returns the detected
// encoding along with the payload bytes (BOM stripped). Without a BOM the
// data is treated as UTF-8 when it validates strictly, ANSI otherwise.
func DetectEncoding(data []byte) (models.Encoding, []byte) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return models.EncodingUTF8BOM, data[len(bomUTF8):]
	case bytes.HasPrefix(data, bomUTF16LE):
		return models.EncodingUTF16LE, data[len(bomUTF16LE):]
	case bytes.HasPrefix(data, bomUTF16BE):
		return models.EncodingUTF16BE, data[len(bomUTF16BE):]
	}
	if utf8.Valid(data) {
		return models.EncodingUTF8, data
	}
	return models.EncodingANSI, data
}

// Decode converts raw file bytes to a string, detecting the encoding from
// the byte-order mark as DetectEncoding does.
func Decode(data []byte) (string, models.Encoding, error) {
	enc, payload := DetectEncoding(data)

	switch enc {
	case models.EncodingUTF8, models.EncodingUTF8BOM:
		return string(payload), enc, nil

	case models.EncodingUTF16LE:
		text, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(payload)
		if err != nil {
			return "", enc, fmt.Errorf("failed to decode UTF-16 LE content: %w", err)
		}
		return string(text), enc, nil

	case models.EncodingUTF16BE:
		text, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(payload)
		if err != nil {
			return "", enc, fmt.Errorf("failed to decode UTF-16 BE content: %w", err)
		}
		return string(text), enc, nil

	default: // models.EncodingANSI
		text, err := charmap.Windows1252.NewDecoder().Bytes(payload)
		if err != nil {
			return "", enc, fmt.Errorf("failed to decode ANSI content: %w", err)
		}
		return string(text), enc, nil
	}
}

// Encode converts text to the byte form written to disk for the given
// encoding, including the byte-order mark where the encoding carries one.
// Returns ErrNotRepresentable if a character has no mapping in the target
// codec.
func Encode(text string, enc models.Encoding) ([]byte, error) {
	switch enc {
	case models.EncodingUTF8:
		return []byte(text), nil

	case models.EncodingUTF8BOM:
		out := make([]byte, 0, len(bomUTF8)+len(text))
		out = append(out, bomUTF8...)
		return append(out, text...), nil

	case models.EncodingUTF16LE:
		payload, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("failed to encode UTF-16 LE content: %w", err)
		}
		return append(append([]byte{}, bomUTF16LE...), payload...), nil

	case models.EncodingUTF16BE:
		payload, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("failed to encode UTF-16 BE content: %w", err)
		}
		return append(append([]byte{}, bomUTF16BE...), payload...), nil

	default: // models.EncodingANSI
		payload, err := charmap.Windows1252.NewEncoder().Bytes([]byte(text))
		if err != nil {
			// The Windows-1252 encoder rejects runes outside its repertoire.
			return nil, ErrNotRepresentable
		}
		return payload, nil
	}
}

// Convert checks that text is representable in the target encoding. The
// document's content is never changed by a conversion; only its save codec
// flips, so a representability check is all that is needed.
func Convert(text string, to models.Encoding) error {
	_, err := Encode(text, to)
	return err
}
