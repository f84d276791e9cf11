package engine

import (
	"strings"

	"github.com/khayt/stylist-bot/internal/models"
)

// topicVocabulary is the clothing/shopping/site-operation wordlist backing
// the on-topic gate. It deliberately overlaps the intent cascade tokens so
// any utterance that classifies to a concrete intent also passes the gate.
var topicVocabulary = []string{
	// garments
	"لبس", "هدوم", "فستان", "قميص", "بنطلون", "جيبة", "جاكيت", "تيشيرت", "بلوزة",
	"هودي", "شورت", "طقم", "اطلالة", "إطلالة", "ستايل",
	"dress", "shirt", "pants", "skirt", "jacket", "hoodie", "shorts", "outfit",
	"clothes", "clothing", "style", "wear",
	// shopping / store operation
	"مقاس", "خامة", "قماش", "لون", "سعر", "بكام", "متوفر", "شحن", "توصيل",
	"استرجاع", "استبدال", "اوردر", "أوردر", "طلب", "الموقع", "حساب",
	"size", "fabric", "color", "price", "stock", "shipping", "delivery",
	"return", "order", "store", "site", "account", "help", "مساعدة", "ساعدني",
}

// fillerPhrases are acknowledgements (and greetings) that never trigger the
// refusal even though they carry no preference and no shop vocabulary.
var fillerPhrases = []string{
	"تمام", "اوك", "أوك", "اوكي", "ماشي", "طيب", "شكرا", "شكرًا", "تسلم", "تسلمي",
	"مرحبا", "اهلا", "أهلا", "السلام عليكم", "صباح الخير", "مساء الخير", "هاي", "ازيك", "إزيك",
	"ok", "okay", "thanks", "thank you", "great", "hi", "hey", "hello", "yes", "no",
}

// OnTopic is the pre-filter described in the reply flow: an utterance is
// off-topic only when it matches no shop vocabulary, extracted no preference
// field, and is not a recognized filler. Off-topic turns get a fixed refusal
// and skip both canned replies and outfit composition.
func OnTopic(utterance string, extracted models.Preferences) bool {
	if !extracted.Empty() {
		return true
	}
	text := strings.ToLower(utterance)
	for _, w := range topicVocabulary {
		if strings.Contains(text, w) {
			return true
		}
	}
	trimmed := strings.TrimSpace(text)
	for _, f := range fillerPhrases {
		// short tokens ("ok", "hi", "no") must match the whole utterance,
		// longer phrases may appear anywhere.
		if trimmed == f || (len(f) > 3 && strings.Contains(text, f)) {
			return true
		}
	}
	return false
}

// OffTopicReply is the fixed refusal sent for off-topic turns.
const OffTopicReply = "أنا مساعد خاص بالمتجر والملابس بس، أقدر أساعدك في اختيار لبس أو أي استفسار عن المتجر."
