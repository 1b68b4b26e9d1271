package config

import (
	"flag"
	"os"
	"time"

	"github.com/arijitp/notekeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":4040")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      bearer token validity, hours
//	-o int      OTP validity, minutes
//	-m string   mail provider ("sendgrid" or "log")
//	-k string   SendGrid API key
//	-f string   mail From address
//	-n string   mail From display name
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers and converted to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-o", "-m", "-k", "-f", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token_validity_duration (in hours)")
	otpValidityDuration := fs.Int("o", int(config.OTPValidityDuration.Minutes()), "otp_validity_duration (in minutes)")

	fs.StringVar(&config.MailProvider, "m", config.MailProvider, "mail provider")
	fs.StringVar(&config.SendGridAPIKey, "k", config.SendGridAPIKey, "SendGrid API key")
	fs.StringVar(&config.MailFromEmail, "f", config.MailFromEmail, "mail From address")
	fs.StringVar(&config.MailFromName, "n", config.MailFromName, "mail From display name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Hour
	config.OTPValidityDuration = time.Duration(*otpValidityDuration) * time.Minute
}
