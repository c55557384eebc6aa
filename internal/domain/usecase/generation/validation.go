package generation

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// Request limits
const (
	MaxMessageTypeLen        = 60
	MaxMessageDescriptionLen = 1000
	MaxToneContextLen        = 100
	MinToneValue             = 0
	MaxToneValue             = 100
	DefaultLocale            = "en"
)

// ValidateRequest checks a generation request and normalizes its language tags
func ValidateRequest(req *entity.GenerationRequest) error {
	if req == nil {
		return errs.ErrInvalidRequest
	}

	req.MessageType = strings.TrimSpace(req.MessageType)
	req.MessageDescription = strings.TrimSpace(req.MessageDescription)

	if err := validateText("messageType", req.MessageType, MaxMessageTypeLen, true); err != nil {
		return err
	}
	if err := validateText("messageDescription", req.MessageDescription, MaxMessageDescriptionLen, true); err != nil {
		return err
	}
	if err := validateText("context.culturalContext", req.Context.CulturalContext, MaxToneContextLen, false); err != nil {
		return err
	}
	if err := validateText("context.medium", req.Context.Medium, MaxToneContextLen, false); err != nil {
		return err
	}

	tones := []struct {
		field string
		value int
	}{
		{"context.formality", req.Context.Formality},
		{"context.directness", req.Context.Directness},
		{"context.emotionalSensitivity", req.Context.EmotionalSensitivity},
	}
	for _, tone := range tones {
		if tone.value < MinToneValue || tone.value > MaxToneValue {
			return errs.NewValidationError(tone.field, "must be between 0 and 100")
		}
	}

	switch req.Context.PowerRelationship {
	case entity.PowerMore, entity.PowerEqual, entity.PowerLess:
	default:
		return errs.NewValidationError("context.powerRelationship", "must be one of more, equal, less")
	}

	locale, err := normalizeTag("locale", req.Locale, DefaultLocale)
	if err != nil {
		return err
	}
	req.Locale = locale

	target, err := normalizeTag("targetLanguage", req.TargetLanguage, locale)
	if err != nil {
		return err
	}
	req.TargetLanguage = target
	return nil
}

func validateText(field, value string, max int, required bool) error {
	if required && value == "" {
		return errs.NewValidationError(field, "is required")
	}
	if utf8.RuneCountInString(value) > max {
		return errs.NewValidationError(field, "is too long")
	}
	return nil
}

// normalizeTag parses a BCP 47 tag, falling back when empty
func normalizeTag(field, value, fallback string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", errs.NewValidationError(field, "must be a BCP 47 language tag")
	}
	return tag.String(), nil
}
