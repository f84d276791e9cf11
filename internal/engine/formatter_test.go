package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khayt/stylist-bot/internal/catalog"
	"github.com/khayt/stylist-bot/internal/models"
)

func fullPrefs() models.Preferences {
	o := models.OccasionParty
	s := models.StyleStreet
	g := models.GenderMen
	c := "أسود"
	f := models.FitSlim
	b := models.BudgetMid
	fb := models.FabricCotton
	return models.Preferences{
		Occasion: &o, Style: &s, Gender: &g,
		Color: &c, Fit: &f, Budget: &b, Fabric: &fb,
	}
}

func TestFormatAsksExactlyOneQuestion(t *testing.T) {
	outfits := Compose(models.Preferences{}, catalog.DemoCatalog())

	tests := []struct {
		name  string
		prefs models.Preferences
	}{
		{"all empty", models.Preferences{}},
		{"partially filled", prefsWith(func(p *models.Preferences) {
			o := models.OccasionWork
			p.Occasion = &o
		})},
		{"all follow-up slots filled", fullPrefs()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Format("عايز لبس", tt.prefs, outfits)
			assert.Equal(t, 1, strings.Count(out, "؟"), "reply: %s", out)
		})
	}
}

func TestFormatFollowUpPriority(t *testing.T) {
	// occasion outranks every other empty slot.
	out := Format("", models.Preferences{}, nil)
	assert.Contains(t, out, "المناسبة")

	// with occasion set the style question comes next.
	out = Format("", prefsWith(func(p *models.Preferences) {
		o := models.OccasionWork
		p.Occasion = &o
	}), nil)
	assert.Contains(t, out, "ستايل")

	// all seven priority slots set: generic refinement question.
	out = Format("", fullPrefs(), nil)
	assert.Contains(t, out, genericFollowUp)
}

func TestFormatAcknowledgmentNeedsCoreTriple(t *testing.T) {
	// occasion + style without gender: generic ask-for-details sentence.
	out := Format("", prefsWith(func(p *models.Preferences) {
		o := models.OccasionParty
		s := models.StyleStreet
		p.Occasion = &o
		p.Style = &s
	}), nil)
	assert.Contains(t, out, "تفاصيل أكتر")

	out = Format("", fullPrefs(), nil)
	assert.Contains(t, out, "حفلة")
	assert.Contains(t, out, "ستريت")
	assert.Contains(t, out, "رجالي")
	assert.Contains(t, out, "أسود")
	assert.Contains(t, out, "قطن")
}

func TestFormatOutfitCountSegment(t *testing.T) {
	outfits := Compose(models.Preferences{}, catalog.DemoCatalog())
	out := Format("عايز لبس", models.Preferences{}, outfits)
	assert.Contains(t, out, "2 اقتراحات")

	out = Format("عايز لبس", models.Preferences{}, nil)
	assert.NotContains(t, out, "اقتراحات تحت")
}
