package cmd

import (
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// TimeZone is the IANA zone order dates and pickup windows are evaluated in.
	TimeZone  string
	JWTSecret string

	// KafkaHost may be empty; order events are then only logged.
	KafkaHost               string
	KafkaOrderResolvedTopic string

	OverdueSweepCron string
	ShutdownTimeout  time.Duration
}
