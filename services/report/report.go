package report

import (
	"context"

	bookingRepo "medibook/database/repository/booking"
	"medibook/models"
)

// topEarnersLimit caps the top-earning-doctors ranking.
const topEarnersLimit = 10

// DefaultReportService implements ReportService over the booking repository.
type DefaultReportService struct {
	Repo bookingRepo.BookingRepository
}

func (s *DefaultReportService) UniqueDoctors(ctx context.Context) (int, error) {
	return s.Repo.CountDistinctDoctors(ctx)
}

func (s *DefaultReportService) BookingsByDoctor(ctx context.Context) ([]models.DoctorBookingCount, error) {
	return s.Repo.BookingsByDoctor(ctx)
}

func (s *DefaultReportService) TotalEarningsAllDoctors(ctx context.Context) (float64, error) {
	return s.Repo.TotalEarnings(ctx)
}

func (s *DefaultReportService) TotalEarningsByDoctor(ctx context.Context) ([]models.DoctorEarnings, error) {
	return s.Repo.EarningsByDoctor(ctx)
}

func (s *DefaultReportService) TopEarningDoctors(ctx context.Context) ([]models.DoctorEarnings, error) {
	return s.Repo.TopEarningDoctors(ctx, topEarnersLimit)
}

func (s *DefaultReportService) ServiceCategoriesByDoctor(ctx context.Context) ([]models.DoctorServiceCategories, error) {
	return s.Repo.ServiceCategoriesByDoctor(ctx)
}

func (s *DefaultReportService) EarningsByServiceCategoryByDoctor(ctx context.Context) ([]models.DoctorCategoryEarnings, error) {
	return s.Repo.EarningsByServiceCategoryByDoctor(ctx)
}

func (s *DefaultReportService) SearchBookings(ctx context.Context, criteria bookingRepo.SearchCriteria) ([]models.BookingSearchRow, error) {
	return s.Repo.Search(ctx, criteria)
}
