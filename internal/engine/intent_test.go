package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khayt/stylist-bot/internal/models"
)

type stubDict struct {
	intents  map[string][]string
	products []string
}

func (d *stubDict) IntentPhrases(category string) []string { return d.intents[category] }
func (d *stubDict) ProductPhrases() []string               { return d.products }

func TestClassifyCascade(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		utterance string
		want      Intent
	}{
		{"مرحبا", IntentGreeting},
		{"hello there", IntentGreeting},
		{"عايز لبس حفلة", IntentRecommend},
		{"suggest something for tonight", IntentRecommend},
		{"ممكن مساعدة", IntentHelp},
		{"عندكم مقاس تاني من ده", IntentSize},
		{"الخامة دي قطن ولا بوليستر", IntentFabric},
		{"في منه لون تاني", IntentColor},
		{"بكام القميص ده", IntentPrice},
		{"المنتج ده متوفر", IntentAvailability},
		{"الشحن بياخد قد ايه", IntentShipping},
		{"ممكن استرجاع المنتج", IntentReturns},
		{"الموقع مش شغال معايا", IntentSiteIssue},
		{"كلام ملوش اي معنى هنا", IntentUnclear},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.utterance))
		})
	}
}

// The cascade order is fixed: a message holding both price and shipping
// tokens resolves to price because price is checked first.
func TestClassifyCascadeOrder(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, IntentPrice, c.Classify("بكام الشحن للاسكندرية"))
}

func TestClassifyGreetingBeatsRecommendation(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, IntentGreeting, c.Classify("مرحبا عايز لبس"))
}

func TestClassifyDictionaryPhrases(t *testing.T) {
	dict := &stubDict{
		intents:  map[string][]string{"recommend": {"شكلي يكون حلو"}},
		products: []string{"جلابية"},
	}
	c := NewClassifier(dict)

	assert.Equal(t, IntentRecommend, c.Classify("نفسي شكلي يكون حلو بكرة"))
	// mentioning a known catalog item counts as asking for a look.
	assert.Equal(t, IntentRecommend, c.Classify("انا محتاج جلابية"))
}

// An unloaded (nil) dictionary degrades silently to built-in patterns.
func TestClassifyNilDictionary(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, IntentRecommend, c.Classify("نسقلي طقم"))
	assert.Equal(t, IntentUnclear, c.Classify("انا محتاج جلابية"))
}

func TestOnTopicGate(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		extracted models.Preferences
		want      bool
	}{
		{"greeting alone passes", "مرحبا", models.Preferences{}, true},
		{"filler passes", "تمام شكرا", models.Preferences{}, true},
		{"shop vocabulary passes", "عندكم فستان سواريه", models.Preferences{}, true},
		{"extracted field passes", "كاجوال", extractedStyle(), true},
		{"off topic blocked", "انت بتحب الكورة", models.Preferences{}, false},
		{"short english ack passes", "ok", models.Preferences{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnTopic(tt.utterance, tt.extracted))
		})
	}
}

func extractedStyle() models.Preferences {
	st := models.StyleCasual
	return models.Preferences{Style: &st}
}
