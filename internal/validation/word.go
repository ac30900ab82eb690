// Package validation checks words typed by users.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ErrInvalidWord is wrapped by every rejection.
var ErrInvalidWord = errors.New("invalid word")

// Vocabulary tells whether a word exists.
type Vocabulary interface {
	Contains(word string) bool
}

type wordInput struct {
	Word string `json:"word" validate:"required,alpha,min=3,max=30,known_word"`
}

// WordValidator accepts alphabetic words of 3 to 30 letters that the
// vocabulary knows.
type WordValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewWordValidator(vocabulary Vocabulary) (*WordValidator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	if err := validate.RegisterValidation("known_word", func(fl validator.FieldLevel) bool {
		return vocabulary.Contains(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register known_word validation: %w", err)
	}
	if err := validate.RegisterTranslation("known_word", trans, func(ut ut.Translator) error {
		return ut.Add("known_word", "{0} is not an available English word", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("known_word", fmt.Sprintf("%q", fe.Value()))
		return t
	}); err != nil {
		return nil, fmt.Errorf("failed to register known_word translation: %w", err)
	}

	return &WordValidator{validate: validate, translator: trans}, nil
}

// Validate returns the lowercased, trimmed word, or an error wrapping
// ErrInvalidWord with a message for the user.
func (v *WordValidator) Validate(input string) (string, error) {
	word := strings.ToLower(strings.TrimSpace(input))
	if err := v.validate.Struct(wordInput{Word: word}); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return "", fmt.Errorf("%w: %s", ErrInvalidWord, validationErrors[0].Translate(v.translator))
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidWord, err)
	}
	return word, nil
}
