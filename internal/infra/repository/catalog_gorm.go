package repository

import (
	"context"
	"math"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	name string,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Model(&models.Service{})
	if name != "" {
		q = q.Where("name = ?", name)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &s, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {

	err := r.db.WithContext(ctx).Create(s).Error
	if httperr.IsDuplicateKey(err) {
		return httperr.ErrBusiness("service_exists")
	}
	return err
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	s *models.Service,
) error {

	err := r.db.WithContext(ctx).
		Model(s).
		Select("name", "category", "description", "image").
		Updates(s).Error
	if httperr.IsDuplicateKey(err) {
		return httperr.ErrBusiness("service_exists")
	}
	return err
}

func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("service_not_found")
	}
	return nil
}

// ServiceInUse reports whether offerings or bookings reference the service.
func (r *CatalogGormRepository) ServiceInUse(
	ctx context.Context,
	id uint,
) (bool, error) {

	var offerings int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProviderService{}).
		Where("service_id = ?", id).
		Count(&offerings).Error; err != nil {
		return false, err
	}
	if offerings > 0 {
		return true, nil
	}

	var bookings int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("service_id = ?", id).
		Count(&bookings).Error; err != nil {
		return false, err
	}
	return bookings > 0, nil
}

func (r *CatalogGormRepository) CountServices(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&n).Error
	return n, err
}

// --------------------------------------------------
// Offerings
// --------------------------------------------------

func (r *CatalogGormRepository) ListOfferings(
	ctx context.Context,
	filter domain.OfferingFilter,
) ([]dto.ProviderServiceView, error) {

	q := r.db.WithContext(ctx).
		Table("provider_services AS ps").
		Select(`ps.id, ps.provider_id, ps.service_id,
			COALESCE(u.name, '') AS provider_name,
			COALESCE(s.name, '') AS service_name,
			COALESCE(s.category, '') AS category,
			ps.hourly_rate, ps.availability_status,
			COALESCE(ps.professional_bio, '') AS professional_bio`).
		Joins("LEFT JOIN users u ON u.id = ps.provider_id").
		Joins("LEFT JOIN services s ON s.id = ps.service_id")

	if filter.ServiceID != 0 {
		q = q.Where("ps.service_id = ?", filter.ServiceID)
	}
	if filter.ProviderID != 0 {
		q = q.Where("ps.provider_id = ?", filter.ProviderID)
	}

	var rows []dto.ProviderServiceView
	if err := q.Order("ps.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListProviderCards returns available offerings of active providers,
// best rated first.
func (r *CatalogGormRepository) ListProviderCards(
	ctx context.Context,
	serviceID uint,
) ([]dto.ProviderCard, error) {

	ratings := r.db.
		Table("reviews").
		Select("reviewee_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count").
		Group("reviewee_id")

	var cards []dto.ProviderCard
	if err := r.db.WithContext(ctx).
		Table("provider_services AS ps").
		Select(`ps.id, ps.provider_id, ps.service_id,
			u.name, ps.hourly_rate,
			COALESCE(rs.avg_rating, 0) AS rating,
			COALESCE(rs.review_count, 0) AS review_count,
			COALESCE(NULLIF(ps.professional_bio, ''), u.bio, '') AS bio,
			s.name AS service_name,
			ps.availability_status,
			COALESCE(u.profile_pic, '') AS profile_pic`).
		Joins("JOIN users u ON u.id = ps.provider_id").
		Joins("JOIN services s ON s.id = ps.service_id").
		Joins("LEFT JOIN (?) AS rs ON rs.reviewee_id = ps.provider_id", ratings).
		Where("ps.service_id = ? AND ps.availability_status = ? AND u.status = ?",
			serviceID, domain.Available, "active").
		Order("rating DESC, review_count DESC, ps.id ASC").
		Scan(&cards).Error; err != nil {
		return nil, err
	}

	for i := range cards {
		cards[i].Rating = roundRating(cards[i].Rating)
	}
	return cards, nil
}

// CreateOfferings inserts every row in one transaction.
func (r *CatalogGormRepository) CreateOfferings(
	ctx context.Context,
	rows []models.ProviderService,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				if httperr.IsDuplicateKey(err) {
					return httperr.ErrBusiness("service_already_registered")
				}
				return err
			}
		}
		return nil
	})
}

func (r *CatalogGormRepository) GetOffering(
	ctx context.Context,
	id uint,
	providerID uint,
) (*models.ProviderService, error) {

	var ps models.ProviderService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", id, providerID).
		First(&ps).Error; err != nil {
		return nil, notFound(err, "offering_not_found")
	}
	return &ps, nil
}

func (r *CatalogGormRepository) UpdateOffering(
	ctx context.Context,
	ps *models.ProviderService,
) error {
	return r.db.WithContext(ctx).
		Model(ps).
		Select("hourly_rate", "availability_status", "professional_bio").
		Updates(ps).Error
}

func (r *CatalogGormRepository) DeleteOffering(
	ctx context.Context,
	id uint,
	providerID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", id, providerID).
		Delete(&models.ProviderService{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("offering_not_found")
	}
	return nil
}

// --------------------------------------------------
// Provider profile
// --------------------------------------------------

func (r *CatalogGormRepository) GetProvider(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, "provider").
		First(&u).Error; err != nil {
		return nil, notFound(err, "provider_not_found")
	}
	return &u, nil
}

func (r *CatalogGormRepository) UpdateProviderProfile(
	ctx context.Context,
	u *models.User,
	hourlyRate *float64,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(u).
			Select("name", "phone", "address", "bio").
			Updates(u).Error; err != nil {
			return err
		}

		if hourlyRate == nil {
			return nil
		}
		return tx.Model(&models.ProviderService{}).
			Where("provider_id = ?", u.ID).
			Update("hourly_rate", *hourlyRate).Error
	})
}

func (r *CatalogGormRepository) RatingSummary(
	ctx context.Context,
	providerID uint,
) (dto.RatingSummary, error) {

	var sum dto.RatingSummary
	if err := r.db.WithContext(ctx).
		Table("reviews").
		Select("COALESCE(AVG(rating), 0) AS rating, COUNT(*) AS review_count").
		Where("reviewee_id = ?", providerID).
		Scan(&sum).Error; err != nil {
		return sum, err
	}

	sum.Rating = roundRating(sum.Rating)
	return sum, nil
}

func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
