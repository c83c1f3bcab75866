package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names an editable column of an entry.
type Field string

const (
	FieldLongURL         Field = "longUrl"
	FieldCustomCode      Field = "customCode"
	FieldValidityMinutes Field = "validityMinutes"
	FieldPassword        Field = "password"
)

var ErrUnknownField = errors.New("unknown field")

// ParseField maps a wire name to a Field.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldLongURL, FieldCustomCode, FieldValidityMinutes, FieldPassword:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Entry is one row of the form. ShortURL is derived and only set by SubmitAll.
type Entry struct {
	LongURL         string `json:"longUrl"`
	ShortURL        string `json:"shortUrl"`
	CustomCode      string `json:"customCode"`
	ValidityMinutes string `json:"validityMinutes"`
	Password        string `json:"password"`
}

// Protected reports whether opening the entry requires a password.
func (e Entry) Protected() bool {
	return e.Password != ""
}

// Shortened reports whether SubmitAll has produced a short link for the entry.
func (e Entry) Shortened() bool {
	return e.ShortURL != ""
}

func (e Entry) with(field Field, value string) Entry {
	switch field {
	case FieldLongURL:
		e.LongURL = value
	case FieldCustomCode:
		e.CustomCode = value
	case FieldValidityMinutes:
		e.ValidityMinutes = value
	case FieldPassword:
		e.Password = value
	}

	return e
}

// EffectiveValidity parses raw as minutes and falls back to DefaultValidityMinutes
// when it is blank, unparseable or not finite.
func EffectiveValidity(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return strconv.Itoa(DefaultValidityMinutes)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.Itoa(DefaultValidityMinutes)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
