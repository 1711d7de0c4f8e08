// Package validation contains the pure input checks used during sign-up:
// an email shape check and the password strength rules. Both are
// deterministic and do no I/O, so screens can re-run them on every
// keystroke.
package validation

import "strings"

// IsValidEmail reports whether s has a conventional local@domain.tld shape.
//
// The check is intentionally shallow: exactly one '@', a non-empty local
// part, no whitespace anywhere, and a domain with at least one dot followed
// by a non-empty suffix. No DNS or MX verification is performed.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}

	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}

	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 {
		// no dot, or dot as the first domain character
		return false
	}
	if dot == len(domain)-1 {
		// empty suffix ("a@b.")
		return false
	}

	return true
}
