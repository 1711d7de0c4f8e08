package validation

import "unicode"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Failure strings double as the user-facing "Password must have:" checklist,
// so their wording and order are part of the UI contract.
const (
	FailureMinLength = "At least 8 characters"
	FailureUppercase = "One uppercase letter"
	FailureLowercase = "One lowercase letter"
	FailureDigit     = "One number"
	FailureSpecial   = "One special character"
)

// PasswordCheck is the outcome of evaluating every strength rule against a
// candidate password. Failures preserves the fixed rule order so callers can
// render a stable checklist.
type PasswordCheck struct {
	Valid    bool
	Failures []string
}

// CheckPassword evaluates all strength rules against s. Rules are never
// short-circuited: every failing rule is reported.
func CheckPassword(s string) PasswordCheck {
	var (
		hasUpper   bool
		hasLower   bool
		hasDigit   bool
		hasSpecial bool
	)

	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	var failures []string
	if len([]rune(s)) < MinPasswordLength {
		failures = append(failures, FailureMinLength)
	}
	if !hasUpper {
		failures = append(failures, FailureUppercase)
	}
	if !hasLower {
		failures = append(failures, FailureLowercase)
	}
	if !hasDigit {
		failures = append(failures, FailureDigit)
	}
	if !hasSpecial {
		failures = append(failures, FailureSpecial)
	}

	return PasswordCheck{Valid: len(failures) == 0, Failures: failures}
}
