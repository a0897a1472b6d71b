package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sportrent/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID         int64           `gorm:"column:id;primaryKey"`
	ClientID   int64           `gorm:"column:client_id"`
	StartDate  time.Time       `gorm:"column:start_date"`
	EndDate    time.Time       `gorm:"column:end_date"`
	ItemIDs    string          `gorm:"column:item_ids"`
	TotalValue decimal.Decimal `gorm:"column:total_value;type:numeric"`
	State      string          `gorm:"column:state"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) (*domain.Reservation, error) {
	itemIDs := []int64{}
	if m.ItemIDs != "" {
		if err := json.Unmarshal([]byte(m.ItemIDs), &itemIDs); err != nil {
			return nil, err
		}
	}

	return &domain.Reservation{
		ID:         m.ID,
		ClientID:   m.ClientID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		ItemIDs:    itemIDs,
		TotalValue: m.TotalValue,
		State:      domain.ReservationState(m.State),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

func toReservationModel(r *domain.Reservation) (reservationModel, error) {
	ids := r.ItemIDs
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return reservationModel{}, err
	}

	return reservationModel{
		ID:         r.ID,
		ClientID:   r.ClientID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		ItemIDs:    string(raw),
		TotalValue: r.TotalValue,
		State:      string(r.State),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m, err := toReservationModel(res)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	back, err := toDomainReservation(m)
	if err != nil {
		return err
	}
	*res = *back
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainReservation(m)
}

// Update persists the full record: state, item set and total move together
// through every transition.
func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	return updateReservation(r.db.WithContext(ctx), res)
}

// UpdateReleasing persists the reservation and flips the given items back to
// available in a single transaction, so a failed write cannot leave released
// items next to a still-active reservation. Ids that no longer resolve are
// simply not matched.
func (r *ReservationRepository) UpdateReleasing(ctx context.Context, res *domain.Reservation, itemIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(itemIDs) > 0 {
			err := tx.Model(&itemModel{}).
				Where("id IN ?", itemIDs).
				Updates(map[string]any{"available": true, "updated_at": time.Now()}).Error
			if err != nil {
				return err
			}
		}
		return updateReservation(tx, res)
	})
}

func updateReservation(tx *gorm.DB, res *domain.Reservation) error {
	m, err := toReservationModel(res)
	if err != nil {
		return err
	}
	return tx.Model(&reservationModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"start_date":  m.StartDate,
			"end_date":    m.EndDate,
			"item_ids":    m.ItemIDs,
			"total_value": m.TotalValue,
			"state":       m.State,
			"updated_at":  time.Now(),
		}).Error
}

// List returns reservations in id order, optionally filtered by client
// and/or state. Filters are conjunctive.
func (r *ReservationRepository) List(ctx context.Context, clientID *int64, state *domain.ReservationState) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&reservationModel{}).Order("id ASC")
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}
	if state != nil {
		q = q.Where("state = ?", string(*state))
	}

	var rows []reservationModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		res, err := toDomainReservation(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, nil
}

// IsItemHeld reports whether any Pending or Confirmed reservation currently
// claims the item. The item id set is a JSON column, so membership is
// checked after decoding rather than in SQL.
func (r *ReservationRepository) IsItemHeld(ctx context.Context, itemID int64) (bool, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("state IN ?", []string{string(domain.ReservationPending), string(domain.ReservationConfirmed)}).
		Find(&rows)
	if tx.Error != nil {
		return false, tx.Error
	}

	for _, m := range rows {
		res, err := toDomainReservation(m)
		if err != nil {
			return false, err
		}
		if res.HasItem(itemID) {
			return true, nil
		}
	}
	return false, nil
}
