// Package otp generates and parses the 6-digit one-time passcodes used
// for email verification.
package otp

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strconv"

	"github.com/arijitp/notekeeper/internal/shared"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

var codeRegex = regexp.MustCompile(`^\d{6}$`)

// Generate returns a uniformly random code in [100000, 999999].
func Generate() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return 0, err
	}
	return codeMin + int(n.Int64()), nil
}

// ParseCode converts a submitted code into its numeric value. Anything that
// is not exactly six digits is rejected with shared.ErrInvalidOTP so a
// malformed submission can never crash the verify flow.
func ParseCode(s string) (int, error) {
	if !codeRegex.MatchString(s) {
		return 0, shared.ErrInvalidOTP
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, shared.ErrInvalidOTP
	}
	return code, nil
}
