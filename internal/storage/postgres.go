package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/khayt/stylist-bot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db}

	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetSession(ctx context.Context, userID int64) (*models.Session, error) {
	query := `
		SELECT preferences, updated_at
		FROM sessions
		WHERE user_id = $1`

	var raw []byte
	session := &models.Session{UserID: userID}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&raw, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		session.UpdatedAt = time.Now()
		return session, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying session: %w", err)
	}

	if err := json.Unmarshal(raw, &session.Preferences); err != nil {
		return nil, fmt.Errorf("error decoding session preferences: %w", err)
	}
	return session, nil
}

func (s *PostgresStorage) SaveSession(ctx context.Context, session *models.Session) error {
	raw, err := json.Marshal(session.Preferences)
	if err != nil {
		return fmt.Errorf("error encoding session preferences: %w", err)
	}

	query := `
		INSERT INTO sessions (user_id, preferences, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET preferences = EXCLUDED.preferences, updated_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, session.UserID, raw); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

func (s *PostgresStorage) ResetSession(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("error resetting session: %w", err)
	}
	return nil
}

func (s *PostgresStorage) AppendMessage(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO messages (id, user_id, role, content, intent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	if _, err := s.db.ExecContext(ctx, query, msg.ID, msg.UserID, msg.Role, msg.Content, msg.Intent, createdAt); err != nil {
		return fmt.Errorf("error appending message: %w", err)
	}
	return nil
}

func (s *PostgresStorage) RecentMessages(ctx context.Context, userID int64, limit int) ([]*models.Message, error) {
	query := `
		SELECT id, user_id, role, content, intent, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Role, &msg.Content, &msg.Intent, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
