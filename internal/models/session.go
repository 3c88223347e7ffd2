package models

import "time"

// Session is a study session created when a user uploads material or pastes
// text. OriginalText holds the pasted or extracted text; FileURL points at
// the stored upload when one exists.
type Session struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Title        string    `json:"title" db:"title"`
	OriginalText *string   `json:"original_text,omitempty" db:"original_text"`
	FileName     *string   `json:"file_name,omitempty" db:"file_name"`
	FileURL      *string   `json:"file_url,omitempty" db:"file_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type SessionListResponse struct {
	Sessions []*Session `json:"sessions"`
	Total    int        `json:"total"`
}
