package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khayt/stylist-bot/internal/catalog"
	"github.com/khayt/stylist-bot/internal/engine"
	"github.com/khayt/stylist-bot/internal/models"
	"github.com/khayt/stylist-bot/internal/storage"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	storage   storage.Storage
	catalog   catalog.Source
	assistant engine.Assistant
	logger    *zap.Logger
}

func New(token string, storage storage.Storage, catalog catalog.Source, assistant engine.Assistant, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:       api,
		storage:   storage,
		catalog:   catalog,
		assistant: assistant,
		logger:    logger,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	utterance := message.Text
	if utterance == "" {
		return
	}

	session, err := b.storage.GetSession(ctx, message.From.ID)
	if err != nil {
		b.logger.Error("Failed to load session",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "حصلت مشكلة مؤقتة، جرب تاني كمان شوية.")
		return
	}

	// snapshot the catalog per turn; the engine treats it as immutable.
	products, err := b.catalog.Products(ctx)
	if err != nil {
		b.logger.Error("Failed to load catalog", zap.Error(err))
		products = nil
	}

	reply := b.assistant.Respond(ctx, utterance, session.Preferences, products)

	session.Preferences = reply.Merged
	if err := b.storage.SaveSession(ctx, session); err != nil {
		b.logger.Error("Failed to save session",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
	}

	b.appendTranscript(ctx, message.From.ID, "user", utterance, string(reply.Intent))
	b.appendTranscript(ctx, message.From.ID, "assistant", reply.Text, string(reply.Intent))

	b.sendReply(message.Chat.ID, message.MessageID, &reply)
}

func (b *Bot) appendTranscript(ctx context.Context, userID int64, role, content, intent string) {
	msg := &models.Message{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		Intent:    intent,
		CreatedAt: time.Now(),
	}
	if err := b.storage.AppendMessage(ctx, msg); err != nil {
		b.logger.Error("Failed to append transcript message",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("role", role))
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "reset":
		b.handleReset(ctx, message)
	case "prefs":
		b.handlePrefs(ctx, message)
	default:
		b.sendMessage(message.Chat.ID, "مش عارف الأمر ده. جرب /help عشان تشوف الأوامر المتاحة.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	welcome := `أهلًا بيك في مساعد الستايل! 👗
احكيلي محتاج لبس لإيه (فرح، شغل، جيم، خروجة...) وأنا أنسقلك إطلالة كاملة من المتجر.

اكتب /help عشان تشوف كل الأوامر.`

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `الأوامر المتاحة:
/start - ابدأ المحادثة
/help - اعرض الرسالة دي
/prefs - اعرض تفضيلاتك المحفوظة
/reset - امسح تفضيلاتك وابدأ من الأول

تقدر تسألني عن المقاسات والخامات والأسعار والشحن والاسترجاع، أو تطلب اقتراح لبس لأي مناسبة.`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleReset(ctx context.Context, message *tgbotapi.Message) {
	if err := b.storage.ResetSession(ctx, message.From.ID); err != nil {
		b.logger.Error("Failed to reset session",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "معرفتش أمسح تفضيلاتك، جرب تاني.")
		return
	}
	b.sendMessage(message.Chat.ID, "تمام، مسحت تفضيلاتك. احكيلي من الأول محتاج إيه.")
}

func (b *Bot) handlePrefs(ctx context.Context, message *tgbotapi.Message) {
	session, err := b.storage.GetSession(ctx, message.From.ID)
	if err != nil {
		b.logger.Error("Failed to get session",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "معرفتش أجيب تفضيلاتك، جرب تاني.")
		return
	}

	if session.Preferences.Empty() {
		b.sendMessage(message.Chat.ID, "لسه مفيش تفضيلات محفوظة. احكيلي محتاج لبس لإيه.")
		return
	}

	b.sendMessage(message.Chat.ID, "تفضيلاتك الحالية:\n"+describePrefs(session.Preferences))
}

func describePrefs(p models.Preferences) string {
	var lines []string
	add := func(label, value string) {
		lines = append(lines, fmt.Sprintf("- %s: %s", label, value))
	}
	if p.Occasion != nil {
		add("المناسبة", string(*p.Occasion))
	}
	if p.Style != nil {
		add("الستايل", string(*p.Style))
	}
	if p.Gender != nil {
		add("النوع", string(*p.Gender))
	}
	if p.Color != nil {
		add("اللون", *p.Color)
	}
	if p.Weather != nil {
		add("الجو", string(*p.Weather))
	}
	if p.Budget != nil {
		add("الميزانية", string(*p.Budget))
	}
	if p.Fit != nil {
		add("القصّة", string(*p.Fit))
	}
	if p.Size != nil {
		add("المقاس", *p.Size)
	}
	if p.Fabric != nil {
		add("الخامة", string(*p.Fabric))
	}
	if p.Opaque != nil {
		if *p.Opaque {
			add("الشفافية", "غير شفاف")
		} else {
			add("الشفافية", "شفاف")
		}
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) sendReply(chatID int64, replyToID int, reply *engine.Reply) {
	text := escapeMarkdown(reply.Text)

	for _, outfit := range reply.Outfits {
		text += "\n\n" + formatBundle(outfit)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "MarkdownV2"
	msg.ReplyToMessageID = replyToID

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send reply",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

// formatBundle renders one bundle. Slots without a product show only the
// generic label, never a price.
func formatBundle(outfit models.OutfitBundle) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n", escapeMarkdown(outfit.Title)))
	for _, item := range outfit.Items {
		if item.Product != nil {
			sb.WriteString(fmt.Sprintf("• %s \\(%s ج\\.م\\)\n",
				escapeMarkdown(item.Product.Name),
				escapeMarkdown(fmt.Sprintf("%.0f", item.Product.Price))))
		} else {
			sb.WriteString(fmt.Sprintf("• %s\n", escapeMarkdown(item.Label)))
		}
	}
	sb.WriteString(fmt.Sprintf("الألوان: %s\n", escapeMarkdown(outfit.Colors)))
	sb.WriteString(fmt.Sprintf("ليه: %s\n", escapeMarkdown(outfit.Why)))
	sb.WriteString(fmt.Sprintf("نصيحة: %s", escapeMarkdown(outfit.StylingTip)))
	return sb.String()
}

// escapeMarkdown escapes special characters for MarkdownV2.
func escapeMarkdown(text string) string {
	specialChars := []string{"_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
