package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type CreateProfileParams struct {
	DisplayName string `json:"display_name" validate:"required"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
}

func (p CreateProfileParams) Validate() error {
	return toValidationError(validate.Struct(p))
}

// UpdateProfileParams carries partial updates; nil means keep the stored value.
type UpdateProfileParams struct {
	DisplayName *string `json:"display_name" validate:"omitnil,min=1"`
	Description *string `json:"description"`
	Avatar      *string `json:"avatar"`
}

func (p UpdateProfileParams) Validate() error {
	return toValidationError(validate.Struct(p))
}

type CreateGameParams struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Genre       string `json:"genre" validate:"required"`
}

func (p CreateGameParams) Validate() error {
	return toValidationError(validate.Struct(p))
}

type UpdateGameParams struct {
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Description *string `json:"description"`
	Genre       *string `json:"genre" validate:"omitnil,min=1"`
}

func (p UpdateGameParams) Validate() error {
	return toValidationError(validate.Struct(p))
}

// EditEvaluationParams carries partial updates to an evaluation. A provided
// review text replaces the stored one verbatim.
type EditEvaluationParams struct {
	Score      *float64 `json:"score" validate:"omitnil,gte=0,lte=10"`
	ReviewText *string  `json:"review_text"`
}

func (p EditEvaluationParams) Validate() error {
	return toValidationError(validate.Struct(p))
}

type scoreParam struct {
	Score float64 `json:"score" validate:"gte=0,lte=10"`
}

// ValidateScore checks an evaluation score against the inclusive [0, 10] range.
func ValidateScore(score float64) error {
	return toValidationError(validate.Struct(scoreParam{Score: score}))
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = validationMessage(fe)
	}
	return NewValidationError(fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "invalid"
	}
}
