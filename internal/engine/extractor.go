package engine

import (
	"strings"

	"github.com/khayt/stylist-bot/internal/models"
)

// Extract parses one utterance into a partial preference record. Each field
// runs its own first-match-wins pass over the same lowercased text, so a
// single message can set several fields at once. Fields with no matching
// token stay nil. Extract is pure and total.
func Extract(utterance string) models.Preferences {
	text := strings.ToLower(utterance)

	var p models.Preferences
	if v, ok := firstMatch(text, occasionRules); ok {
		occ := models.Occasion(v)
		p.Occasion = &occ
	}
	if v, ok := firstMatch(text, styleRules); ok {
		st := models.Style(v)
		p.Style = &st
	}
	if v, ok := firstMatch(text, genderRules); ok {
		g := models.Gender(v)
		p.Gender = &g
	}
	if v, ok := firstMatch(text, colorRules); ok {
		p.Color = &v
	}
	if v, ok := firstMatch(text, weatherRules); ok {
		w := models.Weather(v)
		p.Weather = &w
	}
	if v, ok := firstMatch(text, budgetRules); ok {
		b := models.Budget(v)
		p.Budget = &b
	}
	if v, ok := firstMatch(text, fitRules); ok {
		f := models.Fit(v)
		p.Fit = &f
	}
	if v, ok := firstMatch(text, sizeRules); ok {
		p.Size = &v
	} else if tok := sizeTokenRe.FindString(text); tok != "" {
		raw := strings.ToUpper(tok)
		p.Size = &raw
	}
	if v, ok := firstMatch(text, fabricRules); ok {
		fb := models.Fabric(v)
		p.Fabric = &fb
	}
	if v, ok := firstMatch(text, opaqueRules); ok {
		op := v == "true"
		p.Opaque = &op
	}
	return p
}
