package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/heal-booking-service/internal/domain"
)

// Сообщения об ошибках заявки
const (
	msgDateRequired     = "Datum är obligatoriskt"
	msgDateInvalid      = "Ogiltigt datum"
	msgDateInPast       = "Datum kan inte vara i det förflutna"
	msgTimeRequired     = "Tid är obligatoriskt"
	msgTimeFormat       = "Ogiltigt tidsformat"
	msgSlotUnknown      = "Välj en giltig tidslucka"
	msgModeRequired     = "Välj bokningsläge"
	msgModeInvalid      = "Ogiltigt bokningsläge"
	msgFirstNameMissing = "Förnamn är obligatoriskt"
	msgLastNameMissing  = "Efternamn är obligatoriskt"
	msgStreetMissing    = "Gatuadress är obligatoriskt"
	msgPostalMissing    = "Postnummer är obligatoriskt"
	msgCityMissing      = "Stad är obligatoriskt"
	msgTermsRequired    = "Du måste godkänna villkoren"
	msgHealInvalid      = "Ogiltig behandling"
)

// validateRequest проверяет поля заявки по порядку и возвращает первую ошибку.
// now и loc задают "сегодня" для проверки даты.
func validateRequest(req *Request, now time.Time, loc *time.Location) (*payload, error) {
	p := &payload{}

	// 1. Дата
	rawDate := strings.TrimSpace(req.ScheduledDate)
	if rawDate == "" {
		return nil, invalid("scheduledDate", msgDateRequired)
	}
	date, err := domain.ParseDate(rawDate, loc)
	if err != nil {
		return nil, invalid("scheduledDate", msgDateInvalid)
	}
	if date.Before(domain.StartOfDay(now, loc)) {
		return nil, invalid("scheduledDate", msgDateInPast)
	}
	p.date = date

	// 2. Слот
	slotID := strings.TrimSpace(req.ScheduledTime)
	if slotID == "" {
		return nil, invalid("scheduledTime", msgTimeRequired)
	}
	if !domain.IsSlotIDFormat(slotID) {
		return nil, invalid("scheduledTime", msgTimeFormat)
	}
	slot, ok := domain.FindSlot(slotID)
	if !ok {
		return nil, invalid("scheduledTime", msgSlotUnknown)
	}
	p.slot = slot

	// 3. Режим
	if req.Mode == "" {
		return nil, invalid("mode", msgModeRequired)
	}
	mode := domain.BookingMode(req.Mode)
	if !mode.IsValid() {
		return nil, invalid("mode", msgModeInvalid)
	}
	p.mode = mode

	// 4. Имя и адрес
	required := []struct {
		field   string
		value   string
		message string
		dst     *string
	}{
		{"firstName", req.FirstName, msgFirstNameMissing, &p.firstName},
		{"lastName", req.LastName, msgLastNameMissing, &p.lastName},
		{"street", req.Street, msgStreetMissing, &p.address.Street},
		{"postalCode", req.PostalCode, msgPostalMissing, &p.address.PostalCode},
		{"city", req.City, msgCityMissing, &p.address.City},
	}
	for _, f := range required {
		v := strings.TrimSpace(f.value)
		if v == "" {
			return nil, invalid(f.field, f.message)
		}
		*f.dst = v
	}

	// 5. Телефон
	if err := domain.ValidatePhone(req.Phone); err != nil {
		return nil, invalid("phone", err.Error())
	}
	p.phone = domain.NormalizePhone(req.Phone)

	// 6. Email
	email := domain.NormalizeEmail(req.Email)
	if !domain.IsValidEmail(email) {
		return nil, invalid("email", domain.ErrEmailInvalid.Error())
	}
	p.email = email

	// 7. Согласие с условиями
	if !req.TermsAccepted {
		return nil, invalid("termsAccepted", msgTermsRequired)
	}

	return p, nil
}
