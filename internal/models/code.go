package models

import "time"

// AccessCode — одноразовый код активации. После погашения used_by/used_at
// заполняются навсегда, повторно код использовать нельзя.
type AccessCode struct {
	Code      string
	IsUsed    bool
	UsedBy    *int64
	UsedAt    *time.Time
	CreatedAt time.Time
}
