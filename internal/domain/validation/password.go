// Package validation holds the pure input checks shared by the sign-up flow.
package validation

import (
	"regexp"
	"unicode/utf8"
)

// MinPasswordLength is the shortest accepted password, counted in characters.
const MinPasswordLength = 8

// Rule messages, reported in this order.
const (
	MsgPasswordTooShort  = "Password must be at least 8 characters long"
	MsgPasswordUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordNumber    = "Password must contain at least one number"
	MsgPasswordSpecial   = "Password must contain at least one special character"
)

var (
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
	specialPattern   = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// PasswordResult is the outcome of ValidatePassword. Errors lists the violated rules in
// declared order and is empty, never nil, when Valid is true.
type PasswordResult struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

type passwordRule struct {
	message string
	ok      func(string) bool
}

var passwordRules = []passwordRule{
	{MsgPasswordTooShort, func(p string) bool { return utf8.RuneCountInString(p) >= MinPasswordLength }},
	{MsgPasswordUppercase, uppercasePattern.MatchString},
	{MsgPasswordLowercase, lowercasePattern.MatchString},
	{MsgPasswordNumber, digitPattern.MatchString},
	{MsgPasswordSpecial, specialPattern.MatchString},
}

// ValidatePassword checks password against every rule independently.
func ValidatePassword(password string) PasswordResult {
	violations := make([]string, 0, len(passwordRules))
	for _, rule := range passwordRules {
		if !rule.ok(password) {
			violations = append(violations, rule.message)
		}
	}

	return PasswordResult{
		Valid:  len(violations) == 0,
		Errors: violations,
	}
}
