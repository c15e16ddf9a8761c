package domain

import "time"

// Tracking is a single movement record for a waybill. The ID is derived from
// the record content so that identical submissions collapse to one row.
type Tracking struct {
	ID            string
	WaybillNumber string
	Location      string
	Status        string
	Timestamp     *time.Time
	Description   string
	Reserved1     string
	Reserved2     string
	Reserved3     string
}
