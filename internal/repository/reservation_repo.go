package repository

import (
	"context"
	"time"

	"tapechart/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Check-in and check-out are stored as YYYY-MM-DD text. The format is
// fixed-width, so lexical comparison in SQL matches date comparison on
// both postgres and sqlite.
type reservationModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	RoomNumber string    `gorm:"column:room_number;index"`
	GuestName  string    `gorm:"column:guest_name"`
	CheckIn    string    `gorm:"column:check_in"`
	CheckOut   string    `gorm:"column:check_out"`
	Status     string    `gorm:"column:status"`
	GroupID    *string   `gorm:"column:group_id"`
	Private    bool      `gorm:"column:private"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) domain.Reservation {
	var groupID string
	if m.GroupID != nil {
		groupID = *m.GroupID
	}
	return domain.Reservation{
		ID:        m.ID,
		Room:      m.RoomNumber,
		GuestName: m.GuestName,
		CheckIn:   m.CheckIn,
		CheckOut:  m.CheckOut,
		Status:    domain.ReservationStatus(m.Status),
		GroupID:   groupID,
		Private:   m.Private,
	}
}

func toReservationModel(r domain.Reservation) reservationModel {
	var groupID *string
	if r.GroupID != "" {
		v := r.GroupID
		groupID = &v
	}
	return reservationModel{
		ID:         r.ID,
		RoomNumber: r.Room,
		GuestName:  r.GuestName,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Status:     string(r.Status),
		GroupID:    groupID,
		Private:    r.Private,
	}
}

// List returns reservations intersecting [from, to). Empty bounds mean
// unbounded on that side.
func (r *ReservationRepository) List(ctx context.Context, from, to string) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Order("room_number, check_in")
	if to != "" {
		q = q.Where("check_in < ?", to)
	}
	if from != "" {
		q = q.Where("check_out > ?", from)
	}

	var models []reservationModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return domain.Reservation{}, tx.Error
	}
	return toDomainReservation(m), nil
}

// CountOverlapping counts active stays in room whose nights intersect
// [checkIn, checkOut), excluding excludeID so a stay never collides
// with itself when moved within its own range.
func (r *ReservationRepository) CountOverlapping(ctx context.Context, room, checkIn, checkOut, excludeID string) (int64, error) {
	var cnt int64
	q := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("room_number = ?", room).
		Where("status NOT IN ?", []string{
			string(domain.ReservationCancelled),
			string(domain.ReservationNoShow),
		}).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if tx := q.Count(&cnt); tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(*res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) UpdatePlacement(ctx context.Context, id, room, checkIn, checkOut string) (domain.Reservation, error) {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"room_number": room,
			"check_in":    checkIn,
			"check_out":   checkOut,
		})
	if tx.Error != nil {
		return domain.Reservation{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.Reservation{}, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error) {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return domain.Reservation{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.Reservation{}, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Split rewrites the first half in place and inserts the second half in
// one transaction.
func (r *ReservationRepository) Split(ctx context.Context, first, second domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&reservationModel{}).
			Where("id = ?", first.ID).
			Updates(map[string]any{
				"room_number": first.Room,
				"check_out":   first.CheckOut,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		m := toReservationModel(second)
		return tx.Create(&m).Error
	})
}

// HasCheckedInGuest reports whether the room has a CHECKED_IN stay,
// which blocks pulling it out of order.
func (r *ReservationRepository) HasCheckedInGuest(ctx context.Context, room string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("room_number = ? AND status = ?", room, string(domain.ReservationCheckedIn)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
