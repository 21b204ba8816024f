package validation

import (
	"fmt"

	"github.com/kbukum/restkit/util"
)

// Config holds argument-check settings.
//
//	validation:
//	  softcheck: true
//	  patterns:
//	    slug: "[a-z0-9]+(?:-[a-z0-9]+)*"
type Config struct {
	// Softcheck is the default coercion mode; nil means enabled.
	Softcheck *bool `yaml:"softcheck" mapstructure:"softcheck" json:"softcheck"`
	// Patterns are extra named expressions added to the built-in registry.
	Patterns map[string]string `yaml:"patterns" mapstructure:"patterns" json:"patterns" validate:"dive,keys,required,endkeys,required"`
}

// ApplyDefaults applies default values to the validation configuration.
func (c *Config) ApplyDefaults() {
	if c.Softcheck == nil {
		enabled := true
		c.Softcheck = &enabled
	}
}

// Validate checks that every extra pattern has a usable name and compiles.
func (c *Config) Validate() error {
	if err := Validate(c); err != nil {
		return err
	}
	v := New()
	for _, name := range util.SortedKeys(c.Patterns) {
		expr := c.Patterns[name]
		field := "patterns." + name
		v.Custom(!IsBuiltinPattern(name), field, "shadows a built-in pattern")
		if _, err := compileAnchored(expr); err != nil {
			v.AddError(field, fmt.Sprintf("does not compile: %v", err))
		}
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
