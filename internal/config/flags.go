package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-storage-url base URL of the storage service
//	-storage-timeout storage request timeout (e.g., "5s")
//	-d database DSN (storage server only)
//	-secret-key process secret key
//	-token-issuer session token issuer name
//	-session-duration session token lifetime (e.g., "24h")
//	-remember-duration remember-token cookie lifetime (e.g., "8760h")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var storageURL string
	var storageTimeout time.Duration
	var databaseDSN string
	var secretKey string
	var tokenIssuer string
	var sessionDuration time.Duration
	var rememberDuration time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&storageURL, "storage-url", "", "Storage service base URL")
	flag.DurationVar(&storageTimeout, "storage-timeout", 0, "Storage request timeout (e.g., 5s)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&secretKey, "secret-key", "", "Process secret key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session token lifetime (e.g., 24h)")
	flag.DurationVar(&rememberDuration, "remember-duration", 0, "Remember cookie lifetime (e.g., 8760h)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SecretKey:        secretKey,
			TokenIssuer:      tokenIssuer,
			SessionDuration:  sessionDuration,
			RememberDuration: rememberDuration,
		},
		Storage: Storage{
			URL:            storageURL,
			RequestTimeout: storageTimeout,
			DSN:            databaseDSN,
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
	}
}
