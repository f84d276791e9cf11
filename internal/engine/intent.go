package engine

import (
	"regexp"
	"strings"
)

// Intent is the coarse label routing canned replies.
type Intent string

const (
	IntentGreeting     Intent = "greeting"
	IntentRecommend    Intent = "recommend"
	IntentHelp         Intent = "help"
	IntentSize         Intent = "size"
	IntentFabric       Intent = "fabric"
	IntentColor        Intent = "color"
	IntentPrice        Intent = "price"
	IntentAvailability Intent = "availability"
	IntentShipping     Intent = "shipping"
	IntentReturns      Intent = "returns"
	IntentSiteIssue    Intent = "site_issue"
	IntentUnclear      Intent = "unclear"
)

// PhraseDict supplies optionally fetched trigger phrases. Implementations
// must be nil-safe on the classifier side: a nil dict or an unloaded one
// simply contributes no phrases.
type PhraseDict interface {
	IntentPhrases(category string) []string
	ProductPhrases() []string
}

var greetingRe = regexp.MustCompile(`\b(hi|hey|hello)\b`)

// recommendRe is the built-in recommendation trigger; the dictionary, when
// loaded, widens it with fetched phrases and catalog item names.
var recommendRe = regexp.MustCompile(`\b(recommend|suggest|outfit|style me|wear)\b`)

var recommendTokens = []string{"عايز لبس", "عاوز لبس", "عايزة لبس", "اقترح", "نسقلي", "نسق لي", "محتاج لبس", "محتاجة لبس", "طقم", "اطلالة", "إطلالة"}

var intentCascade = []struct {
	intent Intent
	rule   textRule
}{
	{IntentGreeting, textRule{substrings: []string{"مرحبا", "اهلا", "أهلا", "السلام عليكم", "صباح الخير", "مساء الخير", "هاي", "ازيك", "إزيك"}, re: greetingRe}},
	// the recommendation check runs between greeting and help, see Classify.
	{IntentHelp, textRule{substrings: []string{"ساعدني", "ساعديني", "مساعدة", "مساعده", "help", "can you assist"}}},
	{IntentSize, textRule{substrings: []string{"مقاس", "المقاسات", "size", "sizes", "يلبسني"}}},
	{IntentFabric, textRule{substrings: []string{"خامة", "خامه", "قماش", "fabric", "material"}}},
	{IntentColor, textRule{substrings: []string{"لون", "الوان", "ألوان", "color", "colour"}}},
	{IntentPrice, textRule{substrings: []string{"سعر", "السعر", "بكام", "التمن", "price", "cost", "how much"}}},
	{IntentAvailability, textRule{substrings: []string{"متوفر", "موجود", "متاح", "available", "in stock"}}},
	{IntentShipping, textRule{substrings: []string{"شحن", "توصيل", "هيوصل", "shipping", "delivery"}}},
	{IntentReturns, textRule{substrings: []string{"استرجاع", "ارجاع", "إرجاع", "استبدال", "return", "exchange", "refund"}}},
	{IntentSiteIssue, textRule{substrings: []string{"مش شغال", "عطل", "مشكلة في الموقع", "مشكله في الموقع", "الموقع واقع", "not working", "broken", "error", "bug"}}},
}

// Classifier labels utterances with one coarse intent. It holds the injected
// phrase dictionary; dict may be nil, in which case only built-in patterns
// apply. Methods are pure given the classifier state.
type Classifier struct {
	dict PhraseDict
}

func NewClassifier(dict PhraseDict) *Classifier {
	return &Classifier{dict: dict}
}

// Classify runs the fixed cascade, first match wins:
// greeting → recommendation → help → size → fabric → color → price →
// availability → shipping → returns → site issue → unclear.
func (c *Classifier) Classify(utterance string) Intent {
	text := strings.ToLower(utterance)

	if intentCascade[0].rule.matches(text) {
		return IntentGreeting
	}
	if c.isRecommendation(text) {
		return IntentRecommend
	}
	for _, step := range intentCascade[1:] {
		if step.rule.matches(text) {
			return step.intent
		}
	}
	return IntentUnclear
}

func (c *Classifier) isRecommendation(text string) bool {
	for _, tok := range recommendTokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	if recommendRe.MatchString(text) {
		return true
	}
	if c.dict == nil {
		return false
	}
	for _, phrase := range c.dict.IntentPhrases("recommend") {
		if phrase != "" && strings.Contains(text, strings.ToLower(phrase)) {
			return true
		}
	}
	// a mention of a known catalog item also counts as asking for a look.
	for _, name := range c.dict.ProductPhrases() {
		if name != "" && strings.Contains(text, strings.ToLower(name)) {
			return true
		}
	}
	return false
}
