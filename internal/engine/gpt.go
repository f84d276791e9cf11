package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/khayt/stylist-bot/internal/models"
)

// GPTAssistant rewrites the rule engine's reply with a chat model. Slot
// extraction, the gate, and product picks stay rule-based so every testable
// guarantee of the rule backend still holds; only the reply wording is
// delegated. Any API or parse failure falls back to the rule reply.
type GPTAssistant struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	rules       *RuleAssistant
	logger      *zap.Logger
}

func NewGPTAssistant(apiKey, model string, maxTokens int, temperature float64, rules *RuleAssistant, logger *zap.Logger) *GPTAssistant {
	return &GPTAssistant{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		rules:       rules,
		logger:      logger,
	}
}

type gptReply struct {
	Reply string `json:"reply"`
}

func (a *GPTAssistant) Respond(ctx context.Context, utterance string, prefs models.Preferences, catalog []models.Product) Reply {
	reply := a.rules.Respond(ctx, utterance, prefs, catalog)

	// off-topic refusals and canned intents are sent verbatim; only the
	// recommendation wording is worth rephrasing.
	if len(reply.Outfits) == 0 {
		return reply
	}

	titles := make([]string, len(reply.Outfits))
	for i, o := range reply.Outfits {
		titles[i] = o.Title
	}

	prompt := fmt.Sprintf(`أنت مساعد ستايل لمتجر ملابس. أعد صياغة الرد التالي بنفس المعنى وبنفس السؤال الواحد في آخره، بأسلوب ودود بالعامية المصرية. أعد JSON فقط بالشكل:
{"reply": "النص"}

الرد الأصلي: %s
عناوين الإطلالات المقترحة: %s
رسالة المستخدم: %s`, reply.Text, strings.Join(titles, "، "), utterance)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   a.maxTokens,
		Temperature: float32(a.temperature),
	})
	if err != nil {
		a.logger.Error("Failed to get GPT response", zap.Error(err))
		return reply
	}

	var parsed gptReply
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed.Reply == "" {
		a.logger.Error("Failed to parse GPT response",
			zap.Error(err),
			zap.String("response", raw))
		return reply
	}

	reply.Text = parsed.Reply
	return reply
}
