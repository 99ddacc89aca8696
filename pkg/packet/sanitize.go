package packet

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/matzehuels/seedpacket/pkg/errors"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// CheckMarkup rejects web form text that carries HTML tags or comments.
// The text is printed, not rendered as HTML, so it is never rewritten: a
// bare "<" as in "spacing<30cm" or "a < b" passes through untouched.
func (in Input) CheckMarkup() error {
	if hasMarkup(in.SeedName) {
		return errors.New(errors.ErrCodeInvalidInput, "seed name cannot contain HTML markup")
	}
	if hasMarkup(in.Notes) {
		return errors.New(errors.ErrCodeInvalidInput, "notes cannot contain HTML markup")
	}
	return nil
}

// hasMarkup reports whether the strict policy would drop part of s. Both
// sides are unescaped and newline-normalized first, since the HTML tokenizer
// rewrites entities and CRLF in plain text too.
func hasMarkup(s string) bool {
	if !strings.ContainsRune(s, '<') {
		return false
	}
	return plainText(textSanitizer().Sanitize(s)) != plainText(s)
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func plainText(s string) string {
	return newlines.Replace(html.UnescapeString(s))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
