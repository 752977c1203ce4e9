package discount

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCode = errors.New("invalid discount code format")

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is the canonical upper-case form of a user-entered discount code.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}
