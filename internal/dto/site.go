package dto

import (
	"time"

	"github.com/GlebRadaev/ipr/internal/domain"
)

type SiteInfoDTO struct {
	ContactEmail          string    `json:"contact_email" validate:"omitempty,email"`
	ContactPhone          string    `json:"contact_phone" validate:"omitempty,phone"`
	OfficeAddress         string    `json:"office_address" validate:"max=300"`
	MainPhone             string    `json:"main_phone" validate:"omitempty,phone"`
	InvestmentPhone       string    `json:"investment_phone" validate:"omitempty,phone"`
	SupportEmail          string    `json:"support_email" validate:"omitempty,email"`
	BusinessHoursWeekday  string    `json:"business_hours_weekday" validate:"max=100" example:"9:00 AM - 6:00 PM"`
	BusinessHoursSaturday string    `json:"business_hours_saturday" validate:"max=100" example:"10:00 AM - 4:00 PM"`
	BusinessHoursSunday   string    `json:"business_hours_sunday" validate:"max=100" example:"Closed"`
	UpdatedAt             time.Time `json:"updated_at,omitempty"`
}

func FromSiteInfo(si domain.SiteInfo) SiteInfoDTO {
	return SiteInfoDTO{
		ContactEmail:          si.ContactEmail,
		ContactPhone:          si.ContactPhone,
		OfficeAddress:         si.OfficeAddress,
		MainPhone:             si.MainPhone,
		InvestmentPhone:       si.InvestmentPhone,
		SupportEmail:          si.SupportEmail,
		BusinessHoursWeekday:  si.BusinessHoursWeekday,
		BusinessHoursSaturday: si.BusinessHoursSaturday,
		BusinessHoursSunday:   si.BusinessHoursSunday,
		UpdatedAt:             si.UpdatedAt,
	}
}

func (d SiteInfoDTO) ToDomain() domain.SiteInfo {
	return domain.SiteInfo{
		ContactEmail:          d.ContactEmail,
		ContactPhone:          d.ContactPhone,
		OfficeAddress:         d.OfficeAddress,
		MainPhone:             d.MainPhone,
		InvestmentPhone:       d.InvestmentPhone,
		SupportEmail:          d.SupportEmail,
		BusinessHoursWeekday:  d.BusinessHoursWeekday,
		BusinessHoursSaturday: d.BusinessHoursSaturday,
		BusinessHoursSunday:   d.BusinessHoursSunday,
	}
}
