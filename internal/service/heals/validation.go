package heals

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/internal/service/heals/models"
)

const unlimited = 0

// textRule обязательное текстовое поле с ограничением длины (0 = без ограничения)
type textRule struct {
	field  string
	maxLen int
}

var (
	ruleTitle       = textRule{"title", domain.MaxHealTitleLength}
	ruleDescription = textRule{"description", domain.MaxHealDescriptionLength}
	ruleOverview    = textRule{"overview", domain.MaxHealOverviewLength}
	ruleImageURL    = textRule{"imageUrl", unlimited}
	ruleLocation    = textRule{"location", unlimited}
	ruleDate        = textRule{"date", unlimited}
	ruleTime        = textRule{"time", unlimited}
)

func (r textRule) check(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", invalid(r.field, fmt.Sprintf(msgFieldRequired, r.field))
	}
	if r.maxLen > 0 && utf8.RuneCountInString(v) > r.maxLen {
		return "", invalid(r.field, fmt.Sprintf(msgFieldTooLong, r.field, r.maxLen))
	}
	return v, nil
}

// validateCreate проверяет поля в порядке: title, description, overview,
// imageUrl, location, date, time, price, mode, tags
func validateCreate(req *models.CreateHealRequest) (*domain.Heal, error) {
	heal := &domain.Heal{}

	texts := []struct {
		rule textRule
		raw  string
		dst  *string
	}{
		{ruleTitle, req.Title, &heal.Title},
		{ruleDescription, req.Description, &heal.Description},
		{ruleOverview, req.Overview, &heal.Overview},
		{ruleImageURL, req.ImageURL, &heal.ImageURL},
		{ruleLocation, req.Location, &heal.Location},
		{ruleDate, req.Date, &heal.Date},
		{ruleTime, req.Time, &heal.Time},
	}
	for _, t := range texts {
		v, err := t.rule.check(t.raw)
		if err != nil {
			return nil, err
		}
		*t.dst = v
	}

	if req.Price == nil {
		return nil, invalid("price", msgPriceRequired)
	}
	if *req.Price < 0 {
		return nil, invalid("price", msgPriceNegative)
	}
	heal.Price = *req.Price

	if strings.TrimSpace(req.Mode) == "" {
		return nil, invalid("mode", msgModeRequired)
	}
	mode := domain.HealMode(strings.TrimSpace(req.Mode))
	if !mode.IsValid() {
		return nil, invalid("mode", msgModeInvalid)
	}
	heal.Mode = mode

	tags, ok := cleanTags(req.Tags)
	if !ok {
		return nil, invalid("tags", msgTagsRequired)
	}
	heal.Tags = tags

	return heal, nil
}

// validateUpdate проверяет присланные поля по тем же правилам, что и Create
func validateUpdate(req *models.UpdateHealRequest) (domain.HealUpdate, error) {
	var upd domain.HealUpdate

	texts := []struct {
		rule textRule
		raw  *string
		dst  **string
	}{
		{ruleTitle, req.Title, &upd.Title},
		{ruleDescription, req.Description, &upd.Description},
		{ruleOverview, req.Overview, &upd.Overview},
		{ruleImageURL, req.ImageURL, &upd.ImageURL},
		{ruleLocation, req.Location, &upd.Location},
		{ruleDate, req.Date, &upd.Date},
		{ruleTime, req.Time, &upd.Time},
	}
	for _, t := range texts {
		if t.raw == nil {
			continue
		}
		v, err := t.rule.check(*t.raw)
		if err != nil {
			return upd, err
		}
		*t.dst = &v
	}

	if req.Price != nil {
		if *req.Price < 0 {
			return upd, invalid("price", msgPriceNegative)
		}
		price := *req.Price
		upd.Price = &price
	}

	if req.Mode != nil {
		mode := domain.HealMode(strings.TrimSpace(*req.Mode))
		if !mode.IsValid() {
			return upd, invalid("mode", msgModeInvalid)
		}
		upd.Mode = &mode
	}

	if req.Tags != nil {
		tags, ok := cleanTags(req.Tags)
		if !ok {
			return upd, invalid("tags", msgTagsRequired)
		}
		upd.Tags = tags
	}

	return upd, nil
}

// cleanTags обрезает пробелы и отбрасывает пустые теги
func cleanTags(raw []string) ([]string, bool) {
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags, len(tags) > 0
}
