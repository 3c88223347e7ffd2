package models

import "time"

// UploadRequest carries a raw uploaded file into the extraction pipeline.
// It is consumed once and never mutated.
type UploadRequest struct {
	File        []byte
	Filename    string
	ContentType string
}

// ExtractionMetadata describes the text pulled out of a document.
// WordCount is the number of whitespace-separated tokens in the joined text.
// Language is fixed at "en"; no detection is performed.
type ExtractionMetadata struct {
	PageCount int    `json:"page_count"`
	WordCount int    `json:"word_count"`
	Language  string `json:"language"`
}

// ExtractionRecord is the persisted result of a document extraction.
type ExtractionRecord struct {
	ID        string    `json:"id" db:"id"`
	Filename  string    `json:"filename" db:"filename"`
	Text      string    `json:"text" db:"content"`
	PageCount int       `json:"-" db:"page_count"`
	WordCount int       `json:"-" db:"word_count"`
	Language  string    `json:"-" db:"language"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ExtractionResponse is the upload endpoint's payload.
type ExtractionResponse struct {
	ID        string             `json:"id"`
	Filename  string             `json:"filename"`
	Text      string             `json:"text"`
	Metadata  ExtractionMetadata `json:"metadata"`
	CreatedAt time.Time          `json:"created_at"`
}
