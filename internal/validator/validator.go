// Package validator holds the pure pre-flight checks run before any
// extraction or generation work starts. Failing fast here keeps invalid
// requests away from the PDF parser and the model API.
package validator

import (
	"fmt"

	"github.com/studyaid/studyaid-api/internal/utils"
)

// ValidateContent checks the text-length bounds for AI requests.
func ValidateContent(content string, minLen, maxLen int) error {
	length := len(content)
	if length < minLen {
		return utils.NewContentTooShortError(
			fmt.Sprintf("Content must be at least %d characters long", minLen))
	}
	if length > maxLen {
		return utils.NewContentTooLongError(
			fmt.Sprintf("Content must be at most %d characters long", maxLen))
	}
	return nil
}

// ValidateFile checks the MIME type against the allowed set and the size
// against the configured limit.
func ValidateFile(contentType string, sizeBytes int64, allowedTypes []string, maxSizeMB int64) error {
	allowed := false
	for _, t := range allowedTypes {
		if t == contentType {
			allowed = true
			break
		}
	}
	if !allowed {
		return utils.NewInvalidFileTypeError(
			fmt.Sprintf("File type %s is not allowed", contentType))
	}
	if sizeBytes > maxSizeMB*1024*1024 {
		return utils.NewFileTooLargeError(
			fmt.Sprintf("File exceeds maximum size of %dMB", maxSizeMB))
	}
	return nil
}
