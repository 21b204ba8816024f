// Package config loads restkit settings from a YAML file, a .env file and
// the process environment.
//
// # Usage
//
//	cfg, err := config.Load("billing-client")
//	if err != nil {
//	    return err
//	}
//	logger.Init(cfg.Logging)
//	checker, err := cfg.Checker()
//
// Files are looked up under ./cmd/<name>/, ./config/ and the working
// directory unless WithConfigFile or WithEnvFile name them. Environment
// variables override file values using the upper-cased service name as
// prefix and underscores for nesting (BILLING_CLIENT_LOGGING_LEVEL).
package config
