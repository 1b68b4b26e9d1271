// Package mail defines the outbound mail transport used to deliver
// verification codes, plus its SendGrid and log-only implementations.
package mail

import (
	"context"
	"fmt"
)

// Mailer is the injected transport contract. Implementations must return a
// non-nil error when delivery is not accepted; the auth flow treats that as
// a hard failure of the enclosing operation.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// OTPSubject is the subject line for verification code emails.
const OTPSubject = "Your OTP for Signup"

// OTPBody formats the verification email for a code valid until validFor.
func OTPBody(code int, validFor string) string {
	return fmt.Sprintf("Your OTP for registration is: %d. OTP will be valid for %s.", code, validFor)
}
