package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения каталога услуг
const (
	MaxHealTitleLength       = 100
	MaxHealSlugLength        = 120
	MaxHealDescriptionLength = 500
	MaxHealOverviewLength    = 500
)

// Ограничения учетных записей и бронирований
const (
	MinPasswordLength = 8
	MinPhoneDigits    = 7
	MaxPhoneDigits    = 12
)

// Пагинация списков
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// DefaultCountryCode код страны для номеров, начинающихся с 0
const DefaultCountryCode = "+46"
