package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Ошибки проверки телефона и email. Текст ошибки показывается клиенту как есть.
var (
	ErrPhoneRequired  = errors.New("Telefon är obligatoriskt")
	ErrPhoneTooShort  = errors.New("Telefonnumret måste innehålla minst 7 siffror")
	ErrPhoneTooLong   = errors.New("Telefonnumret får innehålla högst 12 siffror")
	ErrPhoneFormat    = errors.New("Ogiltigt telefonnummerformat")
	ErrPhonePlusFirst = errors.New("Plustecken får bara stå först i numret")
	ErrEmailInvalid   = errors.New("Ogiltig e-postadress")
)

var (
	// Из пробельных символов допускается только обычный пробел
	phoneCharsPattern = regexp.MustCompile(`^\+?[\d \-()]+$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidatePhone проверяет номер телефона в том порядке, в котором клиент
// видит ошибки: обязательность, минимум и максимум цифр, допустимые символы,
// позиция "+".
func ValidatePhone(raw string) error {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return ErrPhoneRequired
	}

	digits := CountDigits(phone)
	if digits < MinPhoneDigits {
		return ErrPhoneTooShort
	}
	if digits > MaxPhoneDigits {
		return ErrPhoneTooLong
	}

	if !phoneCharsPattern.MatchString(phone) {
		return ErrPhoneFormat
	}
	if strings.Contains(phone, "+") && !strings.HasPrefix(phone, "+") {
		return ErrPhonePlusFirst
	}
	return nil
}

// NormalizeEmail обрезает пробелы и приводит email к нижнему регистру
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsValidEmail проверяет форму адреса local@domain.tld
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ParseDate разбирает дату в формате YYYY-MM-DD (в локации loc) или RFC 3339.
// Для RFC 3339 момент переводится в loc, и берется календарная дата в loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(DateFormat, s, loc); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

// ParseTimestamp разбирает момент времени: RFC 3339 или дату YYYY-MM-DD
// (начало дня в loc)
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(DateFormat, s, loc)
}

// StartOfDay полночь календарного дня t в локации loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
