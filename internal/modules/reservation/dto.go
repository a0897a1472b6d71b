package reservation

import "time"

type CreateReservationRequest struct {
	ClientID  int64     `json:"client_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type AddItemRequest struct {
	ItemID int64 `json:"item_id" binding:"required"`
}
