package dto

import (
	"time"

	"github.com/kezig/logistics-service/internal/domain"
)

// WaybillRequest is the JSON payload for creating or updating a waybill.
type WaybillRequest struct {
	WaybillNumber      string  `json:"waybill_number"`
	SenderName         string  `json:"sender_name"`
	SenderPhone        string  `json:"sender_phone"`
	ReceiverName       string  `json:"receiver_name"`
	ReceiverPhone      string  `json:"receiver_phone"`
	Origin             string  `json:"origin"`
	OriginCity         string  `json:"origin_city"`
	Destination        string  `json:"destination"`
	DestinationCity    string  `json:"destination_city"`
	Status             string  `json:"status"`
	IsInsured          bool    `json:"is_insured"`
	InsuredAmount      float64 `json:"insured_amount"`
	ValueAddedServices string  `json:"value_added_services"`
	ImageURLs          string  `json:"image_urls"`
	MediaAttachments   string  `json:"media_attachments"`
	Weight             float64 `json:"weight"`
	Length             float64 `json:"length"`
	Width              float64 `json:"width"`
	Height             float64 `json:"height"`
	Volume             float64 `json:"volume"`
	GoodsType          string  `json:"goods_type"`
	PackageType        string  `json:"package_type"`
	Description        string  `json:"description"`
	Reserved1          string  `json:"reserved1"`
	Reserved2          string  `json:"reserved2"`
	Reserved3          string  `json:"reserved3"`
}

// ToDomain maps the request onto a domain waybill.
func (r WaybillRequest) ToDomain() *domain.Waybill {
	return &domain.Waybill{
		WaybillNumber:      r.WaybillNumber,
		SenderName:         r.SenderName,
		SenderPhone:        r.SenderPhone,
		ReceiverName:       r.ReceiverName,
		ReceiverPhone:      r.ReceiverPhone,
		Origin:             r.Origin,
		OriginCity:         r.OriginCity,
		Destination:        r.Destination,
		DestinationCity:    r.DestinationCity,
		Status:             r.Status,
		IsInsured:          r.IsInsured,
		InsuredAmount:      r.InsuredAmount,
		ValueAddedServices: r.ValueAddedServices,
		ImageURLs:          r.ImageURLs,
		MediaAttachments:   r.MediaAttachments,
		Weight:             r.Weight,
		Length:             r.Length,
		Width:              r.Width,
		Height:             r.Height,
		Volume:             r.Volume,
		GoodsType:          r.GoodsType,
		PackageType:        r.PackageType,
		Description:        r.Description,
		Reserved1:          r.Reserved1,
		Reserved2:          r.Reserved2,
		Reserved3:          r.Reserved3,
	}
}

// TrackingRequest is the JSON payload for creating or updating a tracking record.
type TrackingRequest struct {
	WaybillNumber string     `json:"waybill_number"`
	Location      string     `json:"location"`
	Status        string     `json:"status"`
	Timestamp     *time.Time `json:"timestamp"`
	Description   string     `json:"description"`
	Reserved1     string     `json:"reserved1"`
	Reserved2     string     `json:"reserved2"`
	Reserved3     string     `json:"reserved3"`
}

// ToDomain maps the request onto a domain tracking record.
func (r TrackingRequest) ToDomain() *domain.Tracking {
	return &domain.Tracking{
		WaybillNumber: r.WaybillNumber,
		Location:      r.Location,
		Status:        r.Status,
		Timestamp:     r.Timestamp,
		Description:   r.Description,
		Reserved1:     r.Reserved1,
		Reserved2:     r.Reserved2,
		Reserved3:     r.Reserved3,
	}
}

// TrackingResponse mirrors a tracking record for listing.
type TrackingResponse struct {
	ID            string     `json:"id"`
	WaybillNumber string     `json:"waybill_number"`
	Location      string     `json:"location"`
	Status        string     `json:"status"`
	Timestamp     *time.Time `json:"timestamp"`
	Description   string     `json:"description"`
	Reserved1     string     `json:"reserved1"`
	Reserved2     string     `json:"reserved2"`
	Reserved3     string     `json:"reserved3"`
}

// FromDomainTracking maps a domain tracking record to its response shape.
func FromDomainTracking(t domain.Tracking) TrackingResponse {
	return TrackingResponse{
		ID:            t.ID,
		WaybillNumber: t.WaybillNumber,
		Location:      t.Location,
		Status:        t.Status,
		Timestamp:     t.Timestamp,
		Description:   t.Description,
		Reserved1:     t.Reserved1,
		Reserved2:     t.Reserved2,
		Reserved3:     t.Reserved3,
	}
}
