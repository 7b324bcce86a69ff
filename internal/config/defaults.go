package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-pass-vault",
			TokenDuration:    30 * 24 * time.Hour,
			PasswordHashCost: bcrypt.DefaultCost,
			Version:          "dev",
			LogLevel:         "info",
		},
		Storage: Storage{
			DB: DB{Driver: DriverMemory},
		},
		Server: Server{
			HTTPAddress:     ":5000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
	}
}
