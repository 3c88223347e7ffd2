package extractor

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/utils"
)

// ExtractTXT decodes a plain-text upload, normalizing the encoding and line
// endings. Plain text has no page structure, so page_count is fixed at 1.
func ExtractTXT(data []byte) (string, models.ExtractionMetadata, error) {
	meta := models.ExtractionMetadata{PageCount: 1, Language: "en"}

	if len(data) == 0 {
		return "", meta, utils.NewUnsupportedFormatError("Empty text file", nil)
	}

	text, err := decodeText(data)
	if err != nil {
		return "", meta, utils.NewExtractionError("Failed to decode text file", err)
	}

	text = cleanText(text)
	meta.WordCount = CountWords(text)

	return text, meta, nil
}

// decodeText handles UTF-8 (with or without BOM), UTF-16 and the common
// single-byte Windows encodings, in that order of preference.
func decodeText(data []byte) (string, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return string(data[3:]), nil
	}

	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}

	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoder := charmap.Windows1252.NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err == nil {
		return string(decoded), nil
	}

	decoder = charmap.ISO8859_1.NewDecoder()
	decoded, _, err = transform.Bytes(decoder, data)
	if err == nil {
		return string(decoded), nil
	}

	return string(data), nil
}

func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x00", "")

	lines := strings.Split(text, "\n")

	var cleanedLines []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
