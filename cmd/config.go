package cmd

import "time"

// Config carries every environment-sourced setting the application needs.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// LinkBaseURL is the public base the order-reference links in status
	// update emails are built from.
	LinkBaseURL string

	// StaleOrderAge is how long an order may sit in Processing before the
	// reminder job flags it.
	StaleOrderAge time.Duration
}
