package domain

import "time"

// Waybill is the domain model for a shipment order. The waybill number is
// assigned by the caller and acts as the business key.
type Waybill struct {
	WaybillNumber string

	SenderName    string
	SenderPhone   string
	ReceiverName  string
	ReceiverPhone string

	Origin          string
	OriginCity      string
	Destination     string
	DestinationCity string
	Status          string

	IsInsured          bool
	InsuredAmount      float64
	ValueAddedServices string
	ImageURLs          string
	MediaAttachments   string

	Weight float64
	Length float64
	Width  float64
	Height float64
	Volume float64

	GoodsType   string
	PackageType string
	Description string

	Reserved1 string
	Reserved2 string
	Reserved3 string

	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
