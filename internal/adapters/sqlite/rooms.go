package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkeye/Chat/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomRepository implements core.RoomBackend.
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Put upserts the room and adds its users to the member table.
func (r *RoomRepository) Put(ctx context.Context, room domain.Room) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toRoomRow(room)
		if err := tx.Save(&row).Error; err != nil {
			return fmt.Errorf("failed to save room: %w", err)
		}
		for _, u := range room.Users {
			if err := addMember(tx, room.ID, u); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RoomRepository) Get(ctx context.Context, id domain.RoomID) (domain.Room, error) {
	db := r.db.WithContext(ctx)
	var row roomRow
	if err := db.First(&row, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Room{}, domain.ErrRoomNotFound
		}
		return domain.Room{}, fmt.Errorf("failed to find room: %w", err)
	}
	var members []memberRow
	if err := db.Where("room_id = ?", row.ID).Order("rowid").Find(&members).Error; err != nil {
		return domain.Room{}, fmt.Errorf("failed to load members: %w", err)
	}
	users := make([]string, 0, len(members))
	for _, m := range members {
		users = append(users, m.Username)
	}
	return row.toDomain(users), nil
}

// List returns rooms in creation order.
func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	db := r.db.WithContext(ctx)
	var rows []roomRow
	if err := db.Order("created_at, rowid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	var members []memberRow
	if err := db.Order("rowid").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	byRoom := make(map[string][]string, len(rows))
	for _, m := range members {
		byRoom[m.RoomID] = append(byRoom[m.RoomID], m.Username)
	}
	out := make([]domain.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(byRoom[row.ID]))
	}
	return out, nil
}

func (r *RoomRepository) AddUser(ctx context.Context, id domain.RoomID, username string) error {
	db := r.db.WithContext(ctx)
	var n int64
	if err := db.Model(&roomRow{}).Where("id = ?", string(id)).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to find room: %w", err)
	}
	if n == 0 {
		return domain.ErrRoomNotFound
	}
	return addMember(db, id, username)
}

func addMember(db *gorm.DB, id domain.RoomID, username string) error {
	row := memberRow{RoomID: string(id), Username: username}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}
