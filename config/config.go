// Package config holds the demo's fixed example values, overridable via
// environment variables for experimentation. Defaults reproduce the canonical
// output of cmd/solid.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries the example values fed to the five demos.
type Config struct {
	InvoiceID     int
	InvoiceAmount float64
	Document      string
	EmailTo       string
	WelcomeMsg    string
	SMSTo         string
	OTPMsg        string
}

// LoadFromEnv is intentionally simple for a demo: every value has a default,
// and only nonsense (a non-positive invoice id) is rejected.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		InvoiceID:     getenvInt("SOLID_INVOICE_ID", 101),
		InvoiceAmount: getenvFloat("SOLID_INVOICE_AMOUNT", 999.0),
		Document:      getenv("SOLID_DOCUMENT", "Report"),
		EmailTo:       getenv("SOLID_EMAIL_TO", "alice@example.com"),
		WelcomeMsg:    getenv("SOLID_WELCOME_MSG", "Welcome!"),
		SMSTo:         getenv("SOLID_SMS_TO", "+911234567890"),
		OTPMsg:        getenv("SOLID_OTP_MSG", "OTP: 123456"),
	}
	if cfg.InvoiceID <= 0 {
		return Config{}, fmt.Errorf("SOLID_INVOICE_ID must be > 0")
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
