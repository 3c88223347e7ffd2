package validator

import (
	"strings"
	"testing"

	"github.com/studyaid/studyaid-api/internal/utils"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	appErr, ok := err.(*utils.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != code {
		t.Errorf("expected code %s, got %s", code, appErr.Code)
	}
}

func TestValidateContentTooShort(t *testing.T) {
	err := ValidateContent("too short", 50, 100000)
	assertCode(t, err, utils.CodeContentTooShort)
}

func TestValidateContentTooLong(t *testing.T) {
	err := ValidateContent(strings.Repeat("a", 101), 50, 100)
	assertCode(t, err, utils.CodeContentTooLong)
}

func TestValidateContentWithinBounds(t *testing.T) {
	if err := ValidateContent(strings.Repeat("a", 50), 50, 100000); err != nil {
		t.Errorf("lower bound should pass, got %v", err)
	}
	if err := ValidateContent(strings.Repeat("a", 100000), 50, 100000); err != nil {
		t.Errorf("upper bound should pass, got %v", err)
	}
}

func TestValidateFileType(t *testing.T) {
	allowed := []string{"application/pdf", "text/plain"}

	if err := ValidateFile("application/pdf", 1024, allowed, 10); err != nil {
		t.Errorf("pdf should pass, got %v", err)
	}

	err := ValidateFile("application/zip", 1024, allowed, 10)
	assertCode(t, err, utils.CodeInvalidFileType)
}

func TestValidateFileSize(t *testing.T) {
	allowed := []string{"application/pdf"}

	if err := ValidateFile("application/pdf", 10*1024*1024, allowed, 10); err != nil {
		t.Errorf("file at exactly the limit should pass, got %v", err)
	}

	err := ValidateFile("application/pdf", 10*1024*1024+1, allowed, 10)
	assertCode(t, err, utils.CodeFileTooLarge)
}
