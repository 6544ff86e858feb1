package services

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/brixon-tools/maltacheck_backend/internal/models"
)

// questionIDPattern is the expected shape of a submitted answer key:
// lowercase q followed by exactly three digits.
var questionIDPattern = regexp.MustCompile(`^q[0-9]{3}$`)

// SanitizeAnswers filters raw submitted key/value pairs down to a clean
// answer set. Keys must match the question-id shape; values must be textual
// or numeric (numbers are coerced to their textual form). Everything else is
// dropped without error.
// #BUSINESS_RULE: This is a filter, not a validator. Malformed input never
// raises - it silently shrinks the answer set, which lowers the score.
func SanitizeAnswers(raw map[string]interface{}) models.AnswerSet {
	sanitized := models.AnswerSet{}
	for key, value := range raw {
		if !questionIDPattern.MatchString(key) {
			continue
		}
		switch v := value.(type) {
		case string:
			sanitized[key] = v
		case float64:
			// encoding/json decodes all JSON numbers as float64
			sanitized[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			sanitized[key] = strconv.Itoa(v)
		default:
			// booleans, nulls, arrays, objects are dropped
		}
	}
	return sanitized
}

var whitespaceRun = regexp.MustCompile(`[\s]+`)

// SanitizeTextField trims a free-text contact field, strips control
// characters and tags, collapses whitespace, and escapes HTML metacharacters
// so downstream consumers can store and render the value safely.
func SanitizeTextField(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case inTag:
		case r < 0x20 || r == 0x7f:
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	cleaned := whitespaceRun.ReplaceAllString(b.String(), " ")
	return html.EscapeString(strings.TrimSpace(cleaned))
}

// SanitizeEmail strips characters that are not valid in an email address.
// It does not validate deliverability; the contact fields carry no
// cross-field invariants.
func SanitizeEmail(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
			strings.ContainsRune("._%+-@", r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeContact applies the field-appropriate sanitizer to every contact field.
func SanitizeContact(c models.Contact) models.Contact {
	return models.Contact{
		Email:     SanitizeEmail(c.Email),
		FirstName: SanitizeTextField(c.FirstName),
		LastName:  SanitizeTextField(c.LastName),
		Phone:     SanitizeTextField(c.Phone),
		Company:   SanitizeTextField(c.Company),
	}
}
