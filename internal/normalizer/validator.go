package normalizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"listingprep/internal/models"
	"listingprep/pkg/utils"
)

// Validation errors. Every name failure wraps ErrInvalidName and every
// location failure wraps ErrInvalidLocation.
var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidLocation = errors.New("missing or invalid location")

	ErrEmptyTitle       = fmt.Errorf("%w: empty title", ErrInvalidName)
	ErrTooFewNameParts  = fmt.Errorf("%w: fewer than two name parts", ErrInvalidName)
	ErrInvalidFirstName = fmt.Errorf("%w: first name rejected", ErrInvalidName)
	ErrInvalidLastName  = fmt.Errorf("%w: last name rejected", ErrInvalidName)
	ErrMissingCity      = fmt.Errorf("%w: missing city", ErrInvalidLocation)
	ErrUnknownState     = fmt.Errorf("%w: unrecognized state", ErrInvalidLocation)
)

// noiseWords mark a token as job-title or company noise rather than part of
// a person's name when any word of the token equals one of them.
var noiseWords = map[string]struct{}{
	"consultant":     {},
	"director":       {},
	"beauty":         {},
	"skincare":       {},
	"sales":          {},
	"independent":    {},
	"senior":         {},
	"representative": {},
	"rep":            {},
	"mk":             {},
	"hq":             {},
	"inc":            {},
	"llc":            {},
}

// connectorWords are dropped from titles and may not start a name token.
var connectorWords = map[string]struct{}{
	"with": {},
	"by":   {},
	"and":  {},
}

// denylist holds the formatting patterns a name token may not match.
var denylist = []string{
	`^-`,
	`;`,
	`\d{3}-\d{3}-\d{4}`, // phone number
}

// wordChars is a word character class that, unlike RE2's \b, counts
// accented and other non-ASCII letters as part of a word.
const wordChars = `\p{L}\p{M}\p{N}_`

var (
	wordRun         = regexp.MustCompile(`[` + wordChars + `]+`)
	defaultPatterns = compilePatterns(denylist)
)

// Validator decides whether titles hold a person's name and whether a
// record carries a usable location.
type Validator struct {
	patterns []*regexp.Regexp
}

// NewValidator creates a validator using the built-in denylist.
func NewValidator() *Validator {
	return &Validator{patterns: defaultPatterns}
}

// NewValidatorWithPatterns creates a validator whose denylist is the built-in
// one plus extra. Extra patterns are matched case-insensitively.
func NewValidatorWithPatterns(extra []string) (*Validator, error) {
	patterns := append([]*regexp.Regexp(nil), defaultPatterns...)

	for _, p := range extra {
		re, err := regexp.Compile("(?i)" + unicodeBoundaries(p))
		if err != nil {
			return nil, fmt.Errorf("invalid name pattern %q: %w", p, err)
		}

		patterns = append(patterns, re)
	}

	return &Validator{patterns: patterns}, nil
}

func compilePatterns(exprs []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile("(?i)"+expr))
	}

	return patterns
}

// unicodeBoundaries rewrites every \b in expr into a group matching the
// start or end of input or a non-word rune, so configured patterns treat
// "é" as a letter the way the built-in ones do.
func unicodeBoundaries(expr string) string {
	var sb strings.Builder

	for i := 0; i < len(expr); i++ {
		if expr[i] != '\\' || i+1 == len(expr) {
			sb.WriteByte(expr[i])
			continue
		}

		if expr[i+1] == 'b' {
			sb.WriteString(`(?:^|$|[^` + wordChars + `])`)
		} else {
			sb.WriteString(expr[i : i+2])
		}

		i++
	}

	return sb.String()
}

// IsValidName reports whether a single name token is acceptable.
func (v *Validator) IsValidName(token string) bool {
	if utf8.RuneCountInString(token) < 2 {
		return false
	}

	for _, loc := range wordRun.FindAllStringIndex(token, -1) {
		word := strings.ToLower(token[loc[0]:loc[1]])

		if _, ok := noiseWords[word]; ok {
			return false
		}

		if _, ok := connectorWords[word]; ok && loc[0] == 0 {
			return false
		}
	}

	for _, re := range v.patterns {
		if re.MatchString(token) {
			return false
		}
	}

	return true
}

// removeConnectors deletes every standalone connector word from s.
func removeConnectors(s string) string {
	return wordRun.ReplaceAllStringFunc(s, func(word string) string {
		if _, ok := connectorWords[strings.ToLower(word)]; ok {
			return ""
		}

		return word
	})
}

// ExtractName pulls a first and last name out of a free-text title.
// Middle tokens are discarded. Both names come back capitalized.
func (v *Validator) ExtractName(title string) (string, string, error) {
	name := utils.NormalizeWhitespace(title)
	if name == "" {
		return "", "", ErrEmptyTitle
	}

	name = strings.TrimSpace(removeConnectors(name))
	name = strings.TrimSpace(strings.TrimLeft(name, "-;"))
	name = strings.TrimSpace(strings.TrimRight(name, "-;"))

	parts := strings.Fields(name)
	if len(parts) < 2 {
		return "", "", ErrTooFewNameParts
	}

	first, last := parts[0], parts[len(parts)-1]

	if !v.IsValidName(first) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFirstName, first)
	}

	if !v.IsValidName(last) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidLastName, last)
	}

	return utils.Capitalize(first), utils.Capitalize(last), nil
}

// ValidateLocation checks the city and state of a record and returns the
// trimmed city and the normalized state code.
func (v *Validator) ValidateLocation(raw models.RawRecord) (string, string, error) {
	city := raw.Text("city")
	if city == "" {
		return "", "", ErrMissingCity
	}

	state, ok := NormalizeState(raw.Text("state"))
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownState, raw.Text("state"))
	}

	return city, state, nil
}

var defaultValidator = NewValidator()

// IsValidName reports whether token passes the built-in denylist.
func IsValidName(token string) bool {
	return defaultValidator.IsValidName(token)
}

// ExtractName extracts (first, last) from title with the built-in denylist.
// It reports false when no acceptable name is found.
func ExtractName(title string) (string, string, bool) {
	first, last, err := defaultValidator.ExtractName(title)

	return first, last, err == nil
}
