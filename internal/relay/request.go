package relay

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hahaha8459812/simple-ai-drawing/internal/model"
	"github.com/samber/lo"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so missing fields read like the wire contract
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Defaults fills the optional request fields.
type Defaults struct {
	Endpoint string

	Model string
}

// Request is a validated relay request. It is built once per call and never modified.
type Request struct {
	ImageURL string

	Prompt string

	Endpoint string

	APIKey string

	Model string
}

// Validate checks the required fields of payload and applies defaults to the optional ones.
// Empty optional fields are treated as absent.
func Validate(payload model.ProcessImageRequest, defaults Defaults) (Request, error) {
	if err := validate.Struct(payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return Request{}, &ValidationError{
				Fields: lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string {
					return fe.Field()
				}),
			}
		}
		return Request{}, err
	}
	return Request{
		ImageURL: payload.ImageURL,
		Prompt:   payload.Prompt,
		Endpoint: lo.Ternary(payload.GeminiAPIEndpoint != "", payload.GeminiAPIEndpoint, defaults.Endpoint),
		APIKey:   payload.GeminiAPIKey,
		Model:    lo.Ternary(payload.GeminiModel != "", payload.GeminiModel, defaults.Model),
	}, nil
}
