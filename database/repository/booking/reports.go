package bookingRepo

import (
	"context"

	"medibook/models"
)

// BookingsByDoctor counts service-booking rows per doctor.
func (r *MongoBookingRepo) BookingsByDoctor(ctx context.Context) ([]models.DoctorBookingCount, error) {
	results := make([]models.DoctorBookingCount, 0)
	if err := r.aggregate(ctx, bookingsByDoctorPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// TotalEarnings sums successfully paid amounts across all service rows.
func (r *MongoBookingRepo) TotalEarnings(ctx context.Context) (float64, error) {
	// The group _id is null here; decode into a shape without it.
	var results []struct {
		TotalEarnings float64 `bson:"totalEarnings"`
	}
	if err := r.aggregate(ctx, totalEarningsPipeline(), &results); err != nil {
		return 0, err
	}
	// An empty collection produces no group document at all.
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalEarnings, nil
}

// EarningsByDoctor sums successfully paid amounts per doctor. Doctors whose
// rows all failed payment appear with totalEarnings 0.
func (r *MongoBookingRepo) EarningsByDoctor(ctx context.Context) ([]models.DoctorEarnings, error) {
	results := make([]models.DoctorEarnings, 0)
	if err := r.aggregate(ctx, earningsByDoctorPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// TopEarningDoctors returns at most limit doctors, descending by earnings,
// doctor name ascending on ties.
func (r *MongoBookingRepo) TopEarningDoctors(ctx context.Context, limit int) ([]models.DoctorEarnings, error) {
	results := make([]models.DoctorEarnings, 0, limit)
	if err := r.aggregate(ctx, topEarningDoctorsPipeline(limit), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ServiceCategoriesByDoctor collects per-category booking counts under each doctor.
func (r *MongoBookingRepo) ServiceCategoriesByDoctor(ctx context.Context) ([]models.DoctorServiceCategories, error) {
	results := make([]models.DoctorServiceCategories, 0)
	if err := r.aggregate(ctx, serviceCategoriesByDoctorPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// EarningsByServiceCategoryByDoctor collects per-category earnings under each doctor.
func (r *MongoBookingRepo) EarningsByServiceCategoryByDoctor(ctx context.Context) ([]models.DoctorCategoryEarnings, error) {
	results := make([]models.DoctorCategoryEarnings, 0)
	if err := r.aggregate(ctx, earningsByCategoryByDoctorPipeline(), &results); err != nil {
		return nil, err
	}
	return results, nil
}
