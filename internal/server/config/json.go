package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/arijitp/notekeeper/internal/flagx"
	"github.com/arijitp/notekeeper/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "24h" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	OTPValidityDuration   timex.Duration `json:"otp_validity_duration"`
	RequestTimeout        timex.Duration `json:"request_timeout"`
	MailProvider          string         `json:"mail_provider"`
	SendGridAPIKey        string         `json:"sendgrid_api_key"`
	MailFromEmail         string         `json:"mail_from_email"`
	MailFromName          string         `json:"mail_from_name"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c/-config command-line
// flags; if neither is set, no JSON file is loaded. An unreadable or
// malformed file panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.OTPValidityDuration = time.Duration(c.OTPValidityDuration.Duration)
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
	config.MailProvider = c.MailProvider
	config.SendGridAPIKey = c.SendGridAPIKey
	config.MailFromEmail = c.MailFromEmail
	config.MailFromName = c.MailFromName
}
