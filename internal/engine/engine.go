package engine

import (
	"context"

	"github.com/khayt/stylist-bot/internal/models"
)

// Reply is one turn's outcome: the text to send, the classified intent, the
// bundles to render (recommendation turns only), and what this utterance
// contributed to the slot record (already merged into Merged).
type Reply struct {
	Text      string
	Intent    Intent
	Outfits   []models.OutfitBundle
	Extracted models.Preferences
	Merged    models.Preferences
}

// Assistant turns one utterance plus session state into a Reply. The rule
// backend is the default; a GPT backend exists behind the same interface.
type Assistant interface {
	Respond(ctx context.Context, utterance string, prefs models.Preferences, catalog []models.Product) Reply
}

// cannedReplies answer the informational intents without touching the
// composer.
var cannedReplies = map[Intent]string{
	IntentGreeting:     "أهلًا بيك! أنا مساعد الستايل بتاع المتجر. احكيلي محتاج لبس لإيه وأنا أنسقلك إطلالة كاملة.",
	IntentHelp:         "أقدر أساعدك تختار لبس لأي مناسبة، أجاوب عن المقاسات والخامات والأسعار، وأتابع معاك الشحن والاسترجاع.",
	IntentSize:         "المقاسات المتاحة مكتوبة على صفحة كل منتج، ولو محتار بين مقاسين خد الأكبر للراحة.",
	IntentFabric:       "تفاصيل الخامة موجودة في وصف كل منتج، وعندنا قطن وكتان وجينز وخامات تانية كتير.",
	IntentColor:        "الألوان المتاحة بتظهر على صفحة المنتج، ولو بتدور على لون معين قولي وأنا أرشحلك.",
	IntentPrice:        "السعر مكتوب على كل منتج، ولو عندك ميزانية محددة قولي عليها وأنا أظبطك.",
	IntentAvailability: "لو المنتج ظاهر في المتجر يبقى متوفر، والمقاسات الخالصة بتتقفل تلقائيًا.",
	IntentShipping:     "الشحن بيوصل خلال 3 لـ 5 أيام عمل، وهيوصلك إشعار بكل خطوة في الطلب.",
	IntentReturns:      "تقدر تسترجع أو تستبدل خلال 14 يوم من الاستلام بشرط المنتج يكون بحالته.",
	IntentSiteIssue:    "تحت أمرك، ابعتلنا وصف المشكلة من صفحة الشكاوى وفريق الدعم هيتابعها فورًا.",
	IntentUnclear:      "مش متأكد إني فهمتك، تقصد تسأل عن منتج ولا محتاج اقتراح لبس لمناسبة معينة؟",
}

// RuleAssistant is the deterministic rule-based backend: extraction, intent
// cascade, on-topic gate, composer, and formatter wired in the order the
// conversation flow requires.
type RuleAssistant struct {
	classifier *Classifier
}

func NewRuleAssistant(dict PhraseDict) *RuleAssistant {
	return &RuleAssistant{classifier: NewClassifier(dict)}
}

// Respond never fails: every path produces a reply. The gate runs after
// extraction so an utterance that sets any slot is always on topic.
func (a *RuleAssistant) Respond(_ context.Context, utterance string, prefs models.Preferences, catalog []models.Product) Reply {
	extracted := Extract(utterance)
	merged := prefs
	merged.Merge(extracted)

	reply := Reply{Extracted: extracted, Merged: merged}

	if !OnTopic(utterance, extracted) {
		reply.Intent = IntentUnclear
		reply.Text = OffTopicReply
		return reply
	}

	intent := a.classifier.Classify(utterance)
	reply.Intent = intent

	// an otherwise-unclear message that still filled a slot continues the
	// slot-filling dialogue instead of getting the "unclear" canned reply.
	if intent == IntentRecommend || (intent == IntentUnclear && !extracted.Empty()) {
		reply.Outfits = Compose(merged, catalog)
		reply.Text = Format(utterance, merged, reply.Outfits)
		return reply
	}

	reply.Text = cannedReplies[intent]
	return reply
}
