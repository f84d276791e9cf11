package engine

import (
	"regexp"
	"strings"
)

// textRule is one (predicate, value) pair in a first-match-wins cascade.
// Rules are evaluated in declaration order; within a rule, substrings are
// tried before the optional regexp. Declaration order is the priority
// contract: several tables contain tokens that are substrings of tokens in
// later rules, and the tests pin that ordering.
type textRule struct {
	substrings []string
	re         *regexp.Regexp
	value      string
}

func (r textRule) matches(text string) bool {
	for _, s := range r.substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return r.re != nil && r.re.MatchString(text)
}

// firstMatch returns the value of the first rule matching text.
func firstMatch(text string, rules []textRule) (string, bool) {
	for _, r := range rules {
		if r.matches(text) {
			return r.value, true
		}
	}
	return "", false
}

var occasionRules = []textRule{
	{substrings: []string{"فرح", "زفاف", "عرس", "خطوبة", "wedding"}, value: "wedding"},
	{substrings: []string{"حفلة", "حفله", "سهرة", "سهره", "بارتي", "party"}, value: "party"},
	// gym before work: "workout" would otherwise hit the "work" token.
	{substrings: []string{"جيم", "تمرين", "رياضة", "رياضه", "gym", "workout", "training"}, value: "gym"},
	{substrings: []string{"شغل", "مقابلة", "مقابله", "اوفيس", "work", "office", "interview", "meeting"}, value: "work"},
	{substrings: []string{"بحر", "شاطئ", "مصيف", "بسين", "beach", "pool"}, value: "beach"},
	{substrings: []string{"سفر", "رحلة", "رحله", "مطار", "travel", "trip"}, value: "travel"},
	{substrings: []string{"خروجة", "خروجه", "فسحة", "فسحه", "مشوار", "outing", "hangout"}, value: "outing"},
}

var styleRules = []textRule{
	// formal tokens belong here, not in the fabric pass.
	{substrings: []string{"كلاسيك", "رسمي", "شيك", "classic", "formal", "elegant"}, value: "classic"},
	{substrings: []string{"ستريت", "street"}, value: "street"},
	{substrings: []string{"مودرن", "عصري", "modern", "trendy"}, value: "modern"},
	{substrings: []string{"سبورت", "سبور", "رياضي", "sporty", "athletic"}, value: "sporty"},
	{substrings: []string{"كاجوال", "كاجول", "يومي", "casual", "everyday"}, value: "casual"},
}

var genderRules = []textRule{
	// women before men: "women" contains the token "men".
	{substrings: []string{"حريمي", "حريمى", "نسائي", "ستاتي", "بناتي", "women", "woman", "female", "ladies"}, value: "women"},
	{substrings: []string{"رجالي", "رجالى", "للرجال", "men", "man", "male"}, value: "men"},
	{substrings: []string{"اطفال", "أطفال", "طفل", "kids", "children", "child"}, value: "kids"},
}

// colorRules store the canonical Arabic color name as the value; both Arabic
// spellings (with and without hamza) and English tokens map to it.
var colorRules = []textRule{
	{substrings: []string{"اسود", "أسود", "black"}, value: "أسود"},
	{substrings: []string{"ابيض", "أبيض", "white"}, value: "أبيض"},
	{substrings: []string{"احمر", "أحمر", "red"}, value: "أحمر"},
	{substrings: []string{"كحلي", "كحلى", "navy"}, value: "كحلي"},
	{substrings: []string{"ازرق", "أزرق", "blue"}, value: "أزرق"},
	{substrings: []string{"اخضر", "أخضر", "green"}, value: "أخضر"},
	{substrings: []string{"بيج", "beige"}, value: "بيج"},
	{substrings: []string{"رمادي", "رمادى", "جراي", "gray", "grey"}, value: "رمادي"},
	{substrings: []string{"بني", "بنى", "brown"}, value: "بني"},
	{substrings: []string{"وردي", "بمبي", "pink"}, value: "وردي"},
	{substrings: []string{"اصفر", "أصفر", "yellow"}, value: "أصفر"},
	{substrings: []string{"موف", "بنفسجي", "purple"}, value: "موف"},
}

var weatherRules = []textRule{
	// "حر" alone is a substring of "حريمي", so hot needs longer tokens.
	{substrings: []string{"الجو حر", "حرارة", "حراره", "صيف", "hot", "summer"}, value: "hot"},
	{substrings: []string{"برد", "بارد", "شتاء", "شتا", "cold", "winter"}, value: "cold"},
	{substrings: []string{"معتدل", "ربيع", "خريف", "mild", "spring", "autumn"}, value: "mild"},
}

var budgetRules = []textRule{
	{substrings: []string{"رخيص", "اقتصادي", "اقتصادى", "على قد", "cheap", "economy", "low budget"}, value: "economy"},
	{substrings: []string{"غالي", "غالى", "فاخر", "بريميم", "premium", "luxury", "expensive"}, value: "premium"},
	{substrings: []string{"متوسط", "معقول", "moderate", "mid range", "mid-range"}, value: "mid"},
}

var fitRules = []textRule{
	{substrings: []string{"اوفر سايز", "أوفر سايز", "اوفرسايز", "واسع", "oversized", "oversize"}, value: "oversized"},
	{substrings: []string{"سليم", "ضيق", "slim", "fitted"}, value: "slim"},
	{substrings: []string{"ريجولار", "عادي", "regular"}, value: "regular"},
}

var sizeRules = []textRule{
	{substrings: []string{"سمول", "صغير", "small"}, value: "small"},
	{substrings: []string{"ميديم", "وسط", "medium"}, value: "medium"},
	{substrings: []string{"لارج", "كبير", "large"}, value: "large"},
}

// sizeTokenRe catches raw sizing tokens ("XL") that the extractor keeps
// verbatim, uppercased. Tried only after sizeRules miss.
var sizeTokenRe = regexp.MustCompile(`\b(xxxl|xxl|xl|xs|3xl|2xl)\b`)

var fabricRules = []textRule{
	{substrings: []string{"قطن", "cotton"}, value: "cotton"},
	{substrings: []string{"بوليستر", "polyester"}, value: "polyester"},
	{substrings: []string{"ليكرا", "lycra"}, value: "lycra"},
	{substrings: []string{"صوف", "wool"}, value: "wool"},
	{substrings: []string{"حرير", "silk"}, value: "silk"},
	{substrings: []string{"جينز", "دنيم", "denim", "jeans"}, value: "denim"},
	{substrings: []string{"قطيفة", "قطيفه", "مخمل", "velvet"}, value: "velvet"},
	{substrings: []string{"كتان", "linen"}, value: "linen"},
	{substrings: []string{"شيفون", "chiffon"}, value: "chiffon"},
	{substrings: []string{"ساتان", "ستان", "satin"}, value: "satin"},
	{substrings: []string{"فسكوز", "فيسكوز", "viscose"}, value: "viscose"},
	{substrings: []string{"استرتش", "سترتش", "stretch"}, value: "stretch"},
}

// opaqueRules: negated forms first, "مش شفاف" contains "شفاف".
var opaqueRules = []textRule{
	{substrings: []string{"مش شفاف", "غير شفاف", "محتشم", "not see through", "not see-through", "opaque"}, value: "true"},
	{substrings: []string{"شفاف", "see through", "see-through", "sheer"}, value: "false"},
}
