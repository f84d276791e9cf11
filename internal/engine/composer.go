package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/khayt/stylist-bot/internal/models"
)

// roleKeywords are the gender-dependent ordered name-substring tables for
// the four garment roles plus the secondary and third lists used by bundles
// 2 and 3. Order matters: the first catalog survivor wins.
type roleKeywords struct {
	top          []string
	bottom       []string
	outerwear    []string
	accessory    []string
	topAlt       []string
	bottomAlt    []string
	topStreet    []string
	bottomStreet []string
}

var womenKeywords = roleKeywords{
	top:          []string{"فستان", "dress", "بلوزة", "blouse", "توب", "top", "قميص", "shirt", "تيشيرت", "t-shirt"},
	bottom:       []string{"بنطلون", "pants", "جيبة", "skirt", "جينز", "jeans", "ليجن", "leggings", "شورت", "shorts"},
	outerwear:    []string{"جاكيت", "jacket", "كوت", "coat", "بليزر", "blazer", "كارديجان", "cardigan", "سويتر", "sweater"},
	accessory:    []string{"شنطة", "bag", "اسكارف", "scarf", "سلسلة", "necklace", "حزام", "belt", "ساعة", "watch"},
	topAlt:       []string{"فستان", "dress", "قميص", "shirt"},
	bottomAlt:    []string{"جيبة", "skirt", "بنطلون", "pants"},
	topStreet:    []string{"تيشيرت", "t-shirt", "هودي", "hoodie"},
	bottomStreet: []string{"شورت", "shorts", "كارجو", "cargo"},
}

var menKeywords = roleKeywords{
	top:          []string{"قميص", "shirt", "تيشيرت", "t-shirt", "بولو", "polo", "هودي", "hoodie", "سويت شيرت", "sweatshirt"},
	bottom:       []string{"بنطلون", "pants", "جينز", "jeans", "شورت", "shorts", "كارجو", "cargo"},
	outerwear:    []string{"جاكيت", "jacket", "كوت", "coat", "بليزر", "blazer", "سويتر", "sweater"},
	accessory:    []string{"حزام", "belt", "ساعة", "watch", "كاب", "cap", "شنطة", "bag"},
	topAlt:       []string{"قميص", "shirt", "بولو", "polo"},
	bottomAlt:    []string{"بنطلون", "pants", "جينز", "jeans"},
	topStreet:    []string{"تيشيرت", "t-shirt", "هودي", "hoodie"},
	bottomStreet: []string{"شورت", "shorts", "كارجو", "cargo"},
}

// keywordsFor also serves kids and the not-yet-known case; the men table
// doubles as the neutral default.
func keywordsFor(g *models.Gender) roleKeywords {
	if g != nil && *g == models.GenderWomen {
		return womenKeywords
	}
	return menKeywords
}

// pickForRole filters catalog items whose name contains any role keyword
// (case-insensitive), optionally reorders survivors by price when a budget
// is set (economy ascending, premium descending, stable), and returns the
// first survivor. Returns nil when nothing matches. Deterministic for a
// fixed catalog order.
func pickForRole(catalog []models.Product, keywords []string, budget *models.Budget) *models.Product {
	var survivors []models.Product
	for _, p := range catalog {
		name := strings.ToLower(p.Name)
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				survivors = append(survivors, p)
				break
			}
		}
	}
	if len(survivors) == 0 {
		return nil
	}
	if budget != nil {
		switch *budget {
		case models.BudgetEconomy:
			sort.SliceStable(survivors, func(i, j int) bool { return survivors[i].Price < survivors[j].Price })
		case models.BudgetPremium:
			sort.SliceStable(survivors, func(i, j int) bool { return survivors[i].Price > survivors[j].Price })
		}
	}
	picked := survivors[0]
	return &picked
}

// generic filler labels for roles with no catalog match.
const (
	fallbackTop       = "توب مريح"
	fallbackBottom    = "بنطلون مريح"
	fallbackOuterwear = "جاكيت خفيف"
)

func slot(label string, p *models.Product) models.OutfitItem {
	if p != nil {
		return models.OutfitItem{Label: p.Name, Product: p}
	}
	return models.OutfitItem{Label: label}
}

// Compose assembles 2 or 3 outfit bundles from the accumulated preferences
// and a catalog snapshot. Three bundles appear only for party or gym
// occasions or street style. Never fails; unmatched roles keep a label-only
// slot. Deterministic given identical catalog order and preferences.
func Compose(prefs models.Preferences, catalog []models.Product) []models.OutfitBundle {
	kw := keywordsFor(prefs.Gender)

	top := pickForRole(catalog, kw.top, prefs.Budget)
	bottom := pickForRole(catalog, kw.bottom, prefs.Budget)
	var outerwear *models.Product
	if prefs.Weather != nil && *prefs.Weather == models.WeatherCold {
		outerwear = pickForRole(catalog, kw.outerwear, prefs.Budget)
	}
	accessory := pickForRole(catalog, kw.accessory, prefs.Budget)

	bundles := []models.OutfitBundle{
		buildFirstBundle(prefs, top, bottom, outerwear, accessory),
	}

	// bundle 2 re-searches with the secondary lists, falling back to the
	// first bundle's picks when the secondary search misses.
	top2 := pickForRole(catalog, kw.topAlt, prefs.Budget)
	if top2 == nil {
		top2 = top
	}
	bottom2 := pickForRole(catalog, kw.bottomAlt, prefs.Budget)
	if bottom2 == nil {
		bottom2 = bottom
	}
	bundles = append(bundles, buildSecondBundle(prefs, top2, bottom2, outerwear))

	if wantsThirdBundle(prefs) {
		top3 := pickForRole(catalog, kw.topStreet, prefs.Budget)
		bottom3 := pickForRole(catalog, kw.bottomStreet, prefs.Budget)
		bundles = append(bundles, buildThirdBundle(prefs, top3, bottom3))
	}

	for i := range bundles {
		bundles[i].ID = fmt.Sprintf("outfit-%d", i+1)
	}
	return bundles
}

func wantsThirdBundle(prefs models.Preferences) bool {
	if prefs.Occasion != nil && (*prefs.Occasion == models.OccasionParty || *prefs.Occasion == models.OccasionGym) {
		return true
	}
	return prefs.Style != nil && *prefs.Style == models.StyleStreet
}

func buildFirstBundle(prefs models.Preferences, top, bottom, outerwear, accessory *models.Product) models.OutfitBundle {
	items := []models.OutfitItem{
		slot(fallbackTop, top),
		slot(fallbackBottom, bottom),
	}
	if prefs.Weather != nil && *prefs.Weather == models.WeatherCold {
		items = append(items, slot(fallbackOuterwear, outerwear))
	}
	if accessory != nil {
		items = append(items, slot("", accessory))
	}

	title := "إطلالة كاجوال مريحة"
	tip := "خلي قطعة واحدة هي البطل والباقي بسيط."
	if prefs.Style != nil {
		switch *prefs.Style {
		case models.StyleClassic:
			title = "إطلالة أنيقة وبسيطة"
			tip = "اقفل آخر زرار في القميص للإطلالة الرسمية."
		case models.StyleStreet:
			title = "إطلالة ستريت جريئة"
			tip = "جرب طبقات فوق بعض مع حذاء رياضي جامد."
		}
	}

	why := "توازن مريح بين الشياكة والراحة ينفع لمعظم المناسبات."
	if prefs.Occasion != nil {
		switch *prefs.Occasion {
		case models.OccasionWedding:
			why = "قطع أنيقة تليق بفرح وتفضل مرتاح فيها طول السهرة."
		case models.OccasionParty:
			why = "إطلالة ملفتة تنفع لحفلة من غير مبالغة."
		case models.OccasionWork:
			why = "شكل محترم ومرتب يناسب يوم الشغل."
		}
	}

	return models.OutfitBundle{
		Title:      title,
		Items:      items,
		Colors:     colorLine(prefs),
		Why:        why,
		StylingTip: tip,
	}
}

func buildSecondBundle(prefs models.Preferences, top, bottom, outerwear *models.Product) models.OutfitBundle {
	items := []models.OutfitItem{
		slot(fallbackTop, top),
		slot(fallbackBottom, bottom),
	}
	if prefs.Weather != nil && *prefs.Weather == models.WeatherCold {
		items = append(items, slot(fallbackOuterwear, outerwear))
	}

	title := "ستايل يومي مرتب"
	if prefs.Style != nil && *prefs.Style == models.StyleModern {
		title = "لمسة مودرن عصرية"
	}

	why := "تشكيلة متوازنة تنفع لأي جو."
	if prefs.Weather != nil {
		switch *prefs.Weather {
		case models.WeatherCold:
			why = "طبقات دافية تحميك من البرد من غير ما تتقل."
		case models.WeatherHot:
			why = "خامات خفيفة تسيب هوا وتريحك في الحر."
		}
	}

	return models.OutfitBundle{
		Title:      title,
		Items:      items,
		Colors:     colorLine(prefs),
		Why:        why,
		StylingTip: "بدّل الإكسسوار وهتحس إنها إطلالة جديدة خالص.",
	}
}

func buildThirdBundle(prefs models.Preferences, top, bottom *models.Product) models.OutfitBundle {
	title := "طقم ترندي جريء"
	why := "قطع شبابية تخليك واخد راحتك وشكلك ترندي."
	tip := "حذاء رياضي أبيض بيكمل الطقم ده دايمًا."
	if prefs.Occasion != nil && *prefs.Occasion == models.OccasionGym {
		title = "طقم رياضي للتمرين"
		why = "خامات مرنة تسمح بالحركة وتمتص العرق."
		tip = "خد معاك جاكيت خفيف لبعد التمرين."
	}

	return models.OutfitBundle{
		Title: title,
		Items: []models.OutfitItem{
			slot(fallbackTop, top),
			slot(fallbackBottom, bottom),
		},
		Colors:     colorLine(prefs),
		Why:        why,
		StylingTip: tip,
	}
}

func colorLine(prefs models.Preferences) string {
	if prefs.Color != nil {
		return "تنسيق حوالين اللون " + *prefs.Color + " مع درجات محايدة."
	}
	if prefs.Style != nil && *prefs.Style == models.StyleClassic {
		return "درجات الكحلي والبيج والأبيض."
	}
	return "ألوان محايدة تتلبس مع بعض بسهولة."
}
