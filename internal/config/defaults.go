// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress      = ":3000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultTokenIssuer      = "cat-api"
	DefaultTokenDuration    = 5 * time.Hour
	DefaultPasswordHashCost = 12
	DefaultLogLevel         = "debug"
	DefaultQueryTimeout     = 5 * time.Second
	DefaultCatAPIBaseURL    = "https://api.thecatapi.com/v1"
	DefaultAdapterTimeout   = 10 * time.Second
)

// defaultConfig returns the lowest-priority layer of the configuration.
// Secrets and the DSN have no defaults on purpose.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{QueryTimeout: DefaultQueryTimeout},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			CORSAllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			CatAPI:         CatAPI{BaseURL: DefaultCatAPIBaseURL},
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
