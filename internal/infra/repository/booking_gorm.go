package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/dto"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Participants
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *BookingGormRepository) GetProviderOffering(
	ctx context.Context,
	providerID uint,
	serviceID uint,
) (*models.ProviderService, error) {

	var ps models.ProviderService
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND service_id = ?", providerID, serviceID).
		First(&ps).Error; err != nil {
		return nil, notFound(err, "service_not_offered")
	}
	return &ps, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	slot := domain.Slot{Date: b.Date, Start: b.StartTime, End: b.EndTime}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var active []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "date", "start_time", "end_time").
			Where(
				"provider_id = ? AND date = ? AND status IN ?",
				b.ProviderID,
				b.Date,
				[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			).
			Find(&active).Error; err != nil {
			return err
		}

		for _, other := range active {
			if slot.Overlaps(domain.Slot{Date: other.Date, Start: other.StartTime, End: other.EndTime}) {
				return httperr.ErrBusiness("time_conflict")
			}
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err, "booking_not_found")
	}
	return &b, nil
}

// UpdateBooking writes the lifecycle columns only while the row still has
// status from; a concurrent transition makes it fail with invalid_transition.
func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
	from string,
) error {

	b.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, from).
		Updates(map[string]any{
			"status":       b.Status,
			"confirmed_at": b.ConfirmedAt,
			"completed_at": b.CompletedAt,
			"canceled_at":  b.CanceledAt,
			"updated_at":   b.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// --------------------------------------------------
// Views
// --------------------------------------------------

func (r *BookingGormRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bookings AS b").
		Select(`b.id, b.seeker_id, b.provider_id, b.service_id,
			b.date, b.start_time, b.end_time, b.total_cost, b.status,
			COALESCE(b.notes, '') AS notes,
			COALESCE(s.name, '') AS service_name,
			COALESCE(p.name, '') AS provider_name,
			COALESCE(sk.name, '') AS seeker_name,
			b.created_at, b.updated_at`).
		Joins("LEFT JOIN services s ON s.id = b.service_id").
		Joins("LEFT JOIN users p ON p.id = b.provider_id").
		Joins("LEFT JOIN users sk ON sk.id = b.seeker_id")
}

func (r *BookingGormRepository) GetBookingView(
	ctx context.Context,
	id uint,
) (*dto.BookingView, error) {

	var rows []dto.BookingView
	if err := r.views(ctx).
		Where("b.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return &rows[0], nil
}

func (r *BookingGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]dto.BookingView, error) {

	var rows []dto.BookingView
	err := r.views(ctx).
		Where("b.seeker_id = ? OR b.provider_id = ?", userID, userID).
		Order("b.date DESC, b.start_time DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *BookingGormRepository) ListForProvider(
	ctx context.Context,
	providerID uint,
) ([]dto.BookingView, error) {

	var rows []dto.BookingView
	err := r.views(ctx).
		Where("b.provider_id = ?", providerID).
		Order("b.date DESC, b.start_time DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.BookingView, error) {

	q := r.views(ctx)
	if filter.Status != "" {
		q = q.Where("b.status = ?", filter.Status)
	}

	var rows []dto.BookingView
	err := q.Order("b.created_at DESC").Scan(&rows).Error
	return rows, err
}

// --------------------------------------------------
// Reminders
// --------------------------------------------------

func (r *BookingGormRepository) ListDueReminders(
	ctx context.Context,
	date string,
) ([]dto.BookingView, error) {

	var rows []dto.BookingView
	err := r.views(ctx).
		Where("b.status = ? AND b.date = ? AND b.reminder_sent_at IS NULL",
			string(domain.StatusConfirmed), date).
		Order("b.start_time ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *BookingGormRepository) MarkReminderSent(
	ctx context.Context,
	id uint,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("reminder_sent_at", at).Error
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *BookingGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {

	err := r.db.WithContext(ctx).Create(rv).Error
	if httperr.IsDuplicateKey(err) {
		return httperr.ErrBusiness("review_exists")
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
