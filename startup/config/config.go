package config

import "os"

type Config struct {
	JaegerAddress      string
	RejectPastBookings bool
}

func NewConfig() *Config {
	return &Config{
		JaegerAddress:      os.Getenv("JAEGER_ADDRESS"),
		RejectPastBookings: os.Getenv("BOOKING_REJECT_PAST_DATES") == "true",
	}
}
