package sqlite

import (
	"context"
	"fmt"
	"slices"

	"github.com/dkeye/Chat/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageRepository implements core.MessageBackend.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Save is idempotent on ChatID.
func (r *MessageRepository) Save(ctx context.Context, msg domain.Message) error {
	row := toMessageRow(msg)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// Recent returns the newest limit messages of a room, oldest first.
func (r *MessageRepository) Recent(ctx context.Context, roomID domain.RoomID, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		limit = -1
	}
	var rows []messageRow
	err := r.db.WithContext(ctx).
		Where("room_id = ?", string(roomID)).
		Order("timestamp DESC, rowid DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	slices.Reverse(rows)
	out := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
