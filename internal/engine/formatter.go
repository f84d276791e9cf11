package engine

import (
	"fmt"
	"strings"

	"github.com/khayt/stylist-bot/internal/models"
)

// display words for restating slots back to the user.
var occasionWords = map[models.Occasion]string{
	models.OccasionWedding: "فرح",
	models.OccasionParty:   "حفلة",
	models.OccasionWork:    "شغل",
	models.OccasionGym:     "جيم",
	models.OccasionBeach:   "بحر",
	models.OccasionTravel:  "سفر",
	models.OccasionOuting:  "خروجة",
}

var styleWords = map[models.Style]string{
	models.StyleCasual:  "كاجوال",
	models.StyleClassic: "كلاسيك",
	models.StyleModern:  "مودرن",
	models.StyleStreet:  "ستريت",
	models.StyleSporty:  "سبورت",
}

var genderWords = map[models.Gender]string{
	models.GenderMen:         "رجالي",
	models.GenderWomen:       "حريمي",
	models.GenderKids:        "أطفال",
	models.GenderUnspecified: "لأي حد",
}

var fitWords = map[models.Fit]string{
	models.FitOversized: "أوفر سايز",
	models.FitSlim:      "سليم",
	models.FitRegular:   "ريجولار",
}

var fabricWords = map[models.Fabric]string{
	models.FabricCotton:    "قطن",
	models.FabricPolyester: "بوليستر",
	models.FabricLycra:     "ليكرا",
	models.FabricWool:      "صوف",
	models.FabricSilk:      "حرير",
	models.FabricDenim:     "جينز",
	models.FabricVelvet:    "قطيفة",
	models.FabricLinen:     "كتان",
	models.FabricChiffon:   "شيفون",
	models.FabricSatin:     "ساتان",
	models.FabricViscose:   "فسكوز",
	models.FabricStretch:   "استرتش",
}

// followUps pair each slot with its question, in the fixed priority order
// the formatter walks. Exactly one question is asked per reply. None of the
// other segments may contain a question mark.
var followUps = []struct {
	empty    func(models.Preferences) bool
	question string
}{
	{func(p models.Preferences) bool { return p.Occasion == nil }, "إيه المناسبة اللي محتاج لبس ليها (فرح، شغل، جيم، خروجة)؟"},
	{func(p models.Preferences) bool { return p.Style == nil }, "بتحب ستايل إيه (كاجوال، كلاسيك، مودرن، ستريت، سبورت)؟"},
	{func(p models.Preferences) bool { return p.Gender == nil }, "اللبس ده رجالي ولا حريمي ولا أطفال؟"},
	{func(p models.Preferences) bool { return p.Fit == nil }, "تحب القصّة تكون سليم ولا ريجولار ولا أوفر سايز؟"},
	{func(p models.Preferences) bool { return p.Color == nil }, "في لون معين مفضّل عندك؟"},
	{func(p models.Preferences) bool { return p.Budget == nil }, "ميزانيتك تقريبًا إيه (اقتصادية، متوسطة، بريميم)؟"},
	{func(p models.Preferences) bool { return p.Fabric == nil }, "بتفضّل خامة معينة زي القطن أو الكتان؟"},
}

const genericFollowUp = "تحب أظبطلك حاجة تاني في الاقتراحات دي؟"

// Format builds the reply string from three fixed segments: acknowledgment,
// outfit count, and a single follow-up question. Pure and total.
func Format(utterance string, prefs models.Preferences, outfits []models.OutfitBundle) string {
	var b strings.Builder

	b.WriteString(acknowledgment(prefs))

	if len(outfits) > 0 {
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf("جهزتلك %d اقتراحات تحت.", len(outfits)))
	}

	b.WriteString(" ")
	b.WriteString(followUp(prefs))

	return b.String()
}

// acknowledgment restates every set field once occasion, style, and gender
// are all known; before that it asks generically for more detail. Field
// order is fixed: occasion, style, gender, then fit, size, color, fabric,
// opacity when present.
func acknowledgment(prefs models.Preferences) string {
	if prefs.Occasion == nil || prefs.Style == nil || prefs.Gender == nil {
		return "قولي تفاصيل أكتر وأنا أظبطلك الإطلالة المناسبة."
	}

	var b strings.Builder
	b.WriteString("تمام! فاهم إنك محتاج لبس ")
	b.WriteString(occasionWords[*prefs.Occasion])
	b.WriteString(" بستايل ")
	b.WriteString(styleWords[*prefs.Style])
	b.WriteString(" ")
	b.WriteString(genderWords[*prefs.Gender])
	if prefs.Fit != nil {
		b.WriteString("، قصّة ")
		b.WriteString(fitWords[*prefs.Fit])
	}
	if prefs.Size != nil {
		b.WriteString("، مقاس ")
		b.WriteString(*prefs.Size)
	}
	if prefs.Color != nil {
		b.WriteString("، باللون ")
		b.WriteString(*prefs.Color)
	}
	if prefs.Fabric != nil {
		b.WriteString("، خامة ")
		b.WriteString(fabricWords[*prefs.Fabric])
	}
	if prefs.Opaque != nil {
		if *prefs.Opaque {
			b.WriteString("، وغير شفاف")
		} else {
			b.WriteString("، وخامة شفافة")
		}
	}
	b.WriteString(".")
	return b.String()
}

func followUp(prefs models.Preferences) string {
	for _, f := range followUps {
		if f.empty(prefs) {
			return f.question
		}
	}
	return genericFollowUp
}
