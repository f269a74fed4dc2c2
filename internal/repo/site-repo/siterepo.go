package siterepo

import (
	"context"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// siteInfoID is the key of the single site_info row.
const siteInfoID = 1

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context) (*domain.SiteInfo, error) {
	query := `
		SELECT contact_email, contact_phone, office_address, main_phone, investment_phone, support_email,
			business_hours_weekday, business_hours_saturday, business_hours_sunday, updated_at
		FROM site_info
		WHERE id = $1
	`
	var si domain.SiteInfo
	err := r.db.QueryRow(ctx, query, siteInfoID).Scan(
		&si.ContactEmail, &si.ContactPhone, &si.OfficeAddress, &si.MainPhone, &si.InvestmentPhone, &si.SupportEmail,
		&si.BusinessHoursWeekday, &si.BusinessHoursSaturday, &si.BusinessHoursSunday, &si.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't load site info", zap.Error(err))
		return nil, err
	}
	return &si, nil
}

func (r *Repository) Upsert(ctx context.Context, si *domain.SiteInfo) (*domain.SiteInfo, error) {
	query := `
		INSERT INTO site_info (id, contact_email, contact_phone, office_address, main_phone, investment_phone, support_email,
			business_hours_weekday, business_hours_saturday, business_hours_sunday)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone,
			office_address = EXCLUDED.office_address,
			main_phone = EXCLUDED.main_phone,
			investment_phone = EXCLUDED.investment_phone,
			support_email = EXCLUDED.support_email,
			business_hours_weekday = EXCLUDED.business_hours_weekday,
			business_hours_saturday = EXCLUDED.business_hours_saturday,
			business_hours_sunday = EXCLUDED.business_hours_sunday,
			updated_at = now()
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, siteInfoID,
		si.ContactEmail, si.ContactPhone, si.OfficeAddress, si.MainPhone, si.InvestmentPhone, si.SupportEmail,
		si.BusinessHoursWeekday, si.BusinessHoursSaturday, si.BusinessHoursSunday,
	).Scan(&si.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save site info", zap.Error(err))
		return nil, err
	}
	return si, nil
}
