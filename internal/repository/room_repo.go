package repository

import (
	"context"
	"sort"
	"time"

	"tapechart/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Number        string    `gorm:"column:number;uniqueIndex"`
	Type          string    `gorm:"column:type"`
	Status        string    `gorm:"column:status"`
	ActiveForSale bool      `gorm:"column:active_for_sale"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) domain.Room {
	return domain.Room{
		ID:            m.ID,
		Number:        m.Number,
		Type:          m.Type,
		Status:        domain.RoomStatus(m.Status),
		ActiveForSale: m.ActiveForSale,
	}
}

// List returns all rooms in grid row order. Room numbers sort
// numerically, not lexically: 9 before 15 before 102. SQL text columns
// cannot express that portably, so the sort happens here.
func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainRoom(m))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return naturalLess(out[i].Number, out[j].Number)
	})
	return out, nil
}

// naturalLess orders room numbers the way a human reads a rack:
// digit runs compare by value, everything else byte-wise. "9" < "15" <
// "102", and prefixed numbers like "A-9" < "A-12" come out right too.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		if isDigit(a[0]) && isDigit(b[0]) {
			da, ra := cutDigits(a)
			db, rb := cutDigits(b)
			if da != db {
				return digitsLess(da, db)
			}
			a, b = ra, rb
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return a == "" && b != ""
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// cutDigits splits s into its leading digit run and the rest.
func cutDigits(s string) (string, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// digitsLess compares two digit runs by numeric value without parsing,
// so arbitrarily long numbers cannot overflow.
func digitsLess(a, b string) bool {
	ta := trimLeadingZeros(a)
	tb := trimLeadingZeros(b)
	if len(ta) != len(tb) {
		return len(ta) < len(tb)
	}
	if ta != tb {
		return ta < tb
	}
	// Equal values; more leading zeros sorts first for stability.
	return len(a) > len(b)
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Where("number = ?", number).First(&m)
	if tx.Error != nil {
		return domain.Room{}, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, number string, status domain.RoomStatus) (domain.Room, error) {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("number = ?", number).
		Update("status", string(status))
	if tx.Error != nil {
		return domain.Room{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.Room{}, gorm.ErrRecordNotFound
	}
	return r.GetByNumber(ctx, number)
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := roomModel{
		Number:        room.Number,
		Type:          room.Type,
		Status:        string(room.Status),
		ActiveForSale: room.ActiveForSale,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	room.ID = m.ID
	return nil
}
