package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
// All failures are reported together in a single error.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "warning", "error", "fatal", "critical", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errorwrapper.WrapError(err, "configuration validation error")
	}

	configErrs := make([]error, 0, len(errs))
	for _, e := range errs {
		section, field := splitNamespace(e.StructNamespace())
		reason := fmt.Sprintf("rule '%s'", e.Tag())
		if e.Param() != "" {
			reason += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			reason += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		configErrs = append(configErrs, errorwrapper.NewConfigurationError(section, field, reason))
	}
	return errorwrapper.WrapError(errors.Join(configErrs...), "configuration validation failed")
}

// splitNamespace turns "GlobalConfig.LogConfig.LogLevel" into ("LogConfig", "LogLevel")
func splitNamespace(ns string) (string, string) {
	parts := strings.SplitN(ns, ".", 3)
	switch len(parts) {
	case 3:
		return parts[1], parts[2]
	case 2:
		return "", parts[1]
	default:
		return "", ns
	}
}
