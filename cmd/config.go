package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr enables the distance cache when set.
	RedisAddr        string
	RedisPassword    string
	DistanceCacheTTL time.Duration

	QuoteTTL            time.Duration
	QuoteExpirySchedule string
}

// DSN returns the libpq connection string for the configured database.
func (c Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSslMode
}
