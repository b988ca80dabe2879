package report

import (
	"context"

	bookingRepo "medibook/database/repository/booking"
	"medibook/models"
)

// ReportService exposes the doctor-level reporting queries. All operations
// are stateless reads; each call issues exactly one store round-trip.
type ReportService interface {
	UniqueDoctors(ctx context.Context) (int, error)
	BookingsByDoctor(ctx context.Context) ([]models.DoctorBookingCount, error)
	TotalEarningsAllDoctors(ctx context.Context) (float64, error)
	TotalEarningsByDoctor(ctx context.Context) ([]models.DoctorEarnings, error)
	TopEarningDoctors(ctx context.Context) ([]models.DoctorEarnings, error)
	ServiceCategoriesByDoctor(ctx context.Context) ([]models.DoctorServiceCategories, error)
	EarningsByServiceCategoryByDoctor(ctx context.Context) ([]models.DoctorCategoryEarnings, error)
	SearchBookings(ctx context.Context, criteria bookingRepo.SearchCriteria) ([]models.BookingSearchRow, error)
}
