package errors

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxImageRefLength bounds background image filenames.
const maxImageRefLength = 255

// ValidateImageRef validates a background image filename for safety.
// The reference must be a plain basename inside the trusted image directory.
//
// Validation rules:
//   - Not empty (callers treat "" as "no image" before calling)
//   - Maximum length of 255 bytes
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Not a hidden file
func ValidateImageRef(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidImageRef, "image name cannot be empty")
	}

	if len(ref) > maxImageRefLength {
		return New(ErrCodeInvalidImageRef, "image name too long (max %d characters)", maxImageRefLength)
	}

	for _, r := range ref {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidImageRef, "image name contains invalid characters")
		}
	}

	if strings.ContainsAny(ref, "/\\") {
		return New(ErrCodeInvalidImageRef, "image name cannot contain path separators")
	}

	if strings.Contains(ref, "..") {
		return New(ErrCodeInvalidImageRef, "image name cannot contain path traversal sequences (..)")
	}

	if strings.HasPrefix(ref, ".") {
		return New(ErrCodeInvalidImageRef, "image name cannot be a hidden file")
	}

	if filepath.Base(ref) != ref {
		return New(ErrCodeInvalidImageRef, "image name must be a plain filename")
	}

	return nil
}

// ValidateSeedName checks that a seed name is printable on a single line.
// Length is not limited; long names simply run past the front panel.
func ValidateSeedName(name string) error {
	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidInput, "seed name is not valid UTF-8")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "seed name cannot contain control characters")
		}
	}
	return nil
}

// ValidateNotes checks free-form notes. Line breaks and tabs are allowed.
func ValidateNotes(notes string) error {
	if !utf8.ValidString(notes) {
		return New(ErrCodeInvalidInput, "notes are not valid UTF-8")
	}
	for _, r := range notes {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "notes contain invalid control characters")
		}
	}
	return nil
}
