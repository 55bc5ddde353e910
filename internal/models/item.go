package models

import "gorm.io/gorm"

// Item represents a single todo entry owned by a user.
type Item struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Description string `json:"description,omitempty" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	OwnerID     string `json:"owner_id" gorm:"type:varchar(36);index;not null"`
	gorm.Model  `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}

// ItemCreateRequest is the request body for creating an item.
// Any owner value supplied by the client is ignored; the authenticated
// caller always becomes the owner.
type ItemCreateRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// ItemUpdateRequest is the request body for a partial item update.
// Only fields present in the payload are applied; nil fields keep their
// stored values.
type ItemUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// ItemsResponse is the paginated list shape for owned items.
type ItemsResponse struct {
	Data  []Item `json:"data"`
	Count int64  `json:"count"`
}
