package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassword_StrongPasswordPasses(t *testing.T) {
	res := CheckPassword("Abcdef12!")

	assert.True(t, res.Valid)
	assert.Empty(t, res.Failures)
}

func TestCheckPassword_ShortLowercaseOnly(t *testing.T) {
	res := CheckPassword("abc")

	require.False(t, res.Valid)
	// Everything except the lowercase rule fails, in fixed rule order.
	assert.Equal(t, []string{
		FailureMinLength,
		FailureUppercase,
		FailureDigit,
		FailureSpecial,
	}, res.Failures)
}

func TestCheckPassword_EmptyFailsAllRules(t *testing.T) {
	res := CheckPassword("")

	require.False(t, res.Valid)
	assert.Equal(t, []string{
		FailureMinLength,
		FailureUppercase,
		FailureLowercase,
		FailureDigit,
		FailureSpecial,
	}, res.Failures)
}

func TestCheckPassword_SingleRuleFailures(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{"missing uppercase", "abcdef12!", []string{FailureUppercase}},
		{"missing lowercase", "ABCDEF12!", []string{FailureLowercase}},
		{"missing digit", "Abcdefgh!", []string{FailureDigit}},
		{"missing special", "Abcdef123", []string{FailureSpecial}},
		{"too short", "Abcd12!", []string{FailureMinLength}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			res := CheckPassword(tt.password)
			require.False(t, res.Valid)
			assert.Equal(t, tt.want, res.Failures)
		})
	}
}

func TestCheckPassword_RuleOrderIsStable(t *testing.T) {
	// Two rules failing at once must still be reported in rule order.
	res := CheckPassword("abcdefgh")

	require.False(t, res.Valid)
	assert.Equal(t, []string{FailureUppercase, FailureDigit, FailureSpecial}, res.Failures)
}

func TestCheckPassword_UnicodeRunesCountedOnce(t *testing.T) {
	// 8 runes, more than 8 bytes; length rule must pass.
	res := CheckPassword("Абвгде1!")

	assert.NotContains(t, res.Failures, FailureMinLength)
}
