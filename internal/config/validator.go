package config

import (
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pberrors "github.com/alexisbeaulieu97/pokebrowse/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("api_url", func(fl validator.FieldLevel) bool {
			parsed, err := url.Parse(fl.Field().String())
			if err != nil {
				return false
			}
			scheme := strings.ToLower(parsed.Scheme)
			return (scheme == "http" || scheme == "https") && parsed.Host != ""
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks cfg against its struct rules.
func Validate(cfg *Config) error {
	if cfg == nil {
		return pberrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError turns the first validator failure into a
// ValidationError named after the YAML key.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldName(ve)
		return pberrors.NewValidationError(field, "failed validation for tag '"+ve.Tag()+"'", err)
	}

	return pberrors.NewValidationError("config", err.Error(), err)
}

var yamlNames = map[string]string{
	"API":       "api",
	"BaseURL":   "base_url",
	"UserAgent": "user_agent",
	"HTTP":      "http",
	"Timeout":   "timeout",
	"DataDir":   "data_dir",
	"Log":       "log",
	"Level":     "level",
	"File":      "file",
	"Human":     "human",
}

func yamlFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 0 && parts[0] == "Config" {
		parts = parts[1:]
	}
	for i, part := range parts {
		if name, ok := yamlNames[part]; ok {
			parts[i] = name
		} else {
			parts[i] = strings.ToLower(part)
		}
	}
	return strings.Join(parts, ".")
}
