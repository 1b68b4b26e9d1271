package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
			"-t", "24", "-o", "10", "-m", "sendgrid", "-k", "SG.key", "-f", "otp@example.com", "-n", "Notes",
		},
			expected: &Config{
				EndpointAddrHTTP:      "127.0.0.1:9090",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenValidityDuration: 24 * time.Hour,
				OTPValidityDuration:   10 * time.Minute,
				MailProvider:          "sendgrid",
				SendGridAPIKey:        "SG.key",
				MailFromEmail:         "otp@example.com",
				MailFromName:          "Notes",
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()
			os.Args = tt.args

			config := &Config{}
			parseFlags(config)

			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestParseFlags_IgnoresUnknown(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-a", ":8080", "-x", "junk"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, ":8080", config.EndpointAddrHTTP)
}
