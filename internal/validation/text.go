package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Vietnamese mobile numbers: leading 0 or +84, then a 9-digit subscriber part.
var phonePattern = regexp.MustCompile(`^(0|\+84)(3|5|7|8|9)\d{8}$`)

// Identifier kinds recognized by ClassifyIdentifier.
const (
	IdentifierEmail   = "email"
	IdentifierPhone   = "phone"
	IdentifierInvalid = "invalid"
)

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// IsPhone reports whether s is a valid Vietnamese mobile number.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ClassifyIdentifier decides whether a login identifier is an email address
// or a phone number.
func ClassifyIdentifier(s string) string {
	switch {
	case IsEmail(s):
		return IdentifierEmail
	case IsPhone(s):
		return IdentifierPhone
	default:
		return IdentifierInvalid
	}
}

var toneReplacements = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`[àáạảãâầấậẩẫăằắặẳẵ]`), "a"},
	{regexp.MustCompile(`[èéẹẻẽêềếệểễ]`), "e"},
	{regexp.MustCompile(`[ìíịỉĩ]`), "i"},
	{regexp.MustCompile(`[òóọỏõôồốộổỗơờớợởỡ]`), "o"},
	{regexp.MustCompile(`[ùúụủũưừứựửữ]`), "u"},
	{regexp.MustCompile(`[ỳýỵỷỹ]`), "y"},
	{regexp.MustCompile(`đ`), "d"},
	{regexp.MustCompile(`[ÀÁẠẢÃÂẦẤẬẨẪĂẰẮẶẲẴ]`), "A"},
	{regexp.MustCompile(`[ÈÉẸẺẼÊỀẾỆỂỄ]`), "E"},
	{regexp.MustCompile(`[ÌÍỊỈĨ]`), "I"},
	{regexp.MustCompile(`[ÒÓỌỎÕÔỒỐỘỔỖƠỜỚỢỞỠ]`), "O"},
	{regexp.MustCompile(`[ÙÚỤỦŨƯỪỨỰỬỮ]`), "U"},
	{regexp.MustCompile(`[ỲÝỴỶỸ]`), "Y"},
	{regexp.MustCompile(`Đ`), "D"},
}

// RemoveVietnameseTones strips diacritics from Vietnamese text so catalog
// names can be searched and slugged with plain ASCII.
func RemoveVietnameseTones(s string) string {
	for _, r := range toneReplacements {
		s = r.pattern.ReplaceAllString(s, r.replace)
	}
	return s
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a tone-stripped name into a URL path segment.
func Slugify(s string) string {
	s = strings.ToLower(RemoveVietnameseTones(s))
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
