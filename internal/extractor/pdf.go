package extractor

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/studyaid/studyaid-api/internal/models"
	"github.com/studyaid/studyaid-api/internal/utils"
)

// ExtractPDF opens the byte buffer as a PDF, pulls the plain text of every
// page in order and returns the joined text plus metadata. Pages are joined
// with a single newline; a page with no extractable text contributes an
// empty string. The input slice is only read, never mutated, so calling
// twice on the same bytes yields identical results.
//
// Language is fixed at "en" — no detection is performed. Known limitation.
func ExtractPDF(data []byte) (string, models.ExtractionMetadata, error) {
	meta := models.ExtractionMetadata{Language: "en"}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", meta, utils.NewUnsupportedFormatError("File is not a valid PDF document", err)
	}

	numPages := pdfReader.NumPage()
	pageTexts := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			pageTexts = append(pageTexts, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page yields empty text, the rest of
			// the document still extracts.
			pageTexts = append(pageTexts, "")
			continue
		}
		pageTexts = append(pageTexts, strings.TrimSpace(text))
	}

	joined := strings.Join(pageTexts, "\n")
	if numPages == 0 {
		joined = ""
	}
	if strings.TrimSpace(joined) == "" {
		joined = ""
	}

	meta.PageCount = numPages
	meta.WordCount = CountWords(joined)

	return joined, meta, nil
}

// CountWords returns the number of whitespace-separated tokens in text.
// An empty string counts zero words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
