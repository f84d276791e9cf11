package storage

import (
	"context"

	"github.com/khayt/stylist-bot/internal/models"
)

// Storage persists per-user slot-filling sessions and the chat transcript.
type Storage interface {
	// GetSession returns the user's session, or an empty one if the user
	// has never written anything.
	GetSession(ctx context.Context, userID int64) (*models.Session, error)
	SaveSession(ctx context.Context, session *models.Session) error
	// ResetSession clears accumulated preferences. The engine never clears
	// a slot on its own; this exists only for the explicit /reset command.
	ResetSession(ctx context.Context, userID int64) error

	AppendMessage(ctx context.Context, msg *models.Message) error
	RecentMessages(ctx context.Context, userID int64, limit int) ([]*models.Message, error)

	Close() error
}
