package code

import (
	"errors"
	"fmt"
	"reflect"
)

// lang holds the English and Italian text for a registered code.
type lang struct {
	en string
	it string
}

// Default language is Italian, matching the user-facing surface.
var lng = "it"

const FALLBACK_LNG = "en"

// GetMessage returns the message for the active language, falling back
// to English when the field is empty.
func (l lang) GetMessage() string {
	if lng == "" {
		lng = FALLBACK_LNG
	}
	val := reflect.ValueOf(l)
	field := val.FieldByName(lng)
	if field.IsValid() && field.String() != "" {
		return field.String()
	}
	fallbackField := val.FieldByName(FALLBACK_LNG)
	if fallbackField.IsValid() && fallbackField.String() != "" {
		return fallbackField.String()
	}
	return fmt.Sprintf("No message available for language: %s", lng)
}

// GetSupportedLanguages lists the languages the lang type carries.
func GetSupportedLanguages() []string {
	var languages []string
	typ := reflect.TypeOf(lang{})
	for i := 0; i < typ.NumField(); i++ {
		languages = append(languages, typ.Field(i).Name)
	}
	return languages
}

// SetGlobalDefaultLang switches the language used for all messages.
func SetGlobalDefaultLang(language string) error {
	for _, l := range GetSupportedLanguages() {
		if language == l {
			lng = language
			return nil
		}
	}
	return errors.New("unsupported language: " + language)
}
