package bookingRepo

import (
	"context"

	"medibook/models"
)

// SearchCriteria carries the optional booking-search filters. A zero-value
// field means no constraint on that field; all supplied constraints are
// combined with logical AND.
//
// Duration is accepted for interface compatibility but applies no filter:
// the stored meeting times are opaque string encodings, so no duration
// semantics is defined for them.
type SearchCriteria struct {
	DoctorName   string
	CustomerName string
	StartTime    string
	EndTime      string
	Duration     string
	PhoneNumber  string
	Earnings     string
}

// BookingRepository defines read-only access to the booking collection.
type BookingRepository interface {
	// CountDistinctDoctors counts distinct doctorUsername values at the
	// Booking-document level, independent of how many services each has.
	CountDistinctDoctors(ctx context.Context) (int, error)
	// BookingsByDoctor counts service-booking rows per doctor. Doctors with
	// zero service rows are absent from the result.
	BookingsByDoctor(ctx context.Context) ([]models.DoctorBookingCount, error)
	// TotalEarnings sums amounts of successfully paid service rows across
	// the whole collection. No successful rows yields 0.
	TotalEarnings(ctx context.Context) (float64, error)
	// EarningsByDoctor applies the conditional earnings sum per doctor.
	EarningsByDoctor(ctx context.Context) ([]models.DoctorEarnings, error)
	// TopEarningDoctors returns the highest-earning doctors, descending by
	// totalEarnings with doctor ascending as tie-break, at most limit rows.
	TopEarningDoctors(ctx context.Context, limit int) ([]models.DoctorEarnings, error)
	// ServiceCategoriesByDoctor counts bookings per (doctor, category) and
	// collects the per-category counts under each doctor.
	ServiceCategoriesByDoctor(ctx context.Context) ([]models.DoctorServiceCategories, error)
	// EarningsByServiceCategoryByDoctor is the same grouping with the
	// conditional earnings sum as the reducer.
	EarningsByServiceCategoryByDoctor(ctx context.Context) ([]models.DoctorCategoryEarnings, error)
	// Search returns projected bookings matching the criteria; a booking
	// matches when its doctor satisfies the doctor constraint and at least
	// one embedded service satisfies the service-level constraints.
	Search(ctx context.Context, criteria SearchCriteria) ([]models.BookingSearchRow, error)
}
