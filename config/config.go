package config

import (
	"github.com/kbukum/restkit/errors"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/validation"
)

// Accepted values of Config.Environment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config is the settings file of an application built on restkit.
//
//	name: billing-client
//	environment: production
//	logging:
//	  level: info
//	  format: json
//	validation:
//	  softcheck: false
//	  patterns:
//	    ticket: "[A-Z]+-[0-9]+"
//
// Projects with more settings embed it:
//
//	type MyConfig struct {
//	    config.Config `yaml:",inline" mapstructure:",squash"`
//	    BaseURL string `yaml:"base_url" mapstructure:"base_url"`
//	}
type Config struct {
	Name        string            `yaml:"name" mapstructure:"name" json:"name" validate:"required"`
	Environment string            `yaml:"environment" mapstructure:"environment" json:"environment" validate:"oneof=development staging production"`
	Version     string            `yaml:"version" mapstructure:"version" json:"version"`
	Debug       bool              `yaml:"debug" mapstructure:"debug" json:"debug"`
	Logging     logger.Config     `yaml:"logging" mapstructure:"logging" json:"logging"`
	Validation  validation.Config `yaml:"validation" mapstructure:"validation" json:"validation"`
}

// ApplyDefaults applies default values to the configuration and its sections.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	if c.Environment == EnvDevelopment {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Validation.ApplyDefaults()
}

// Validate runs the struct tags first, then each section's own checks.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidInput("logging", err.Error()).WithCause(err)
	}
	return c.Validation.Validate()
}

// Checker builds the argument checker described by the validation section.
// The checker logs through the "validation" component logger.
func (c *Config) Checker() (*validation.Checker, error) {
	checker, err := validation.NewChecker(c.Validation)
	if err != nil {
		return nil, err
	}
	return checker.WithLogger(logger.WithComponent("validation")), nil
}
