package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "medibook/database/repository/booking"
	"medibook/services/report"
)

// AdminHandler serves the doctor-level reporting endpoints. Every endpoint
// answers 200 with a JSON payload or 500 with the fixed error body; query
// details never leak to the caller.
type AdminHandler struct {
	Reports report.ReportService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(rs report.ReportService) *AdminHandler {
	return &AdminHandler{Reports: rs}
}

func serverError(c *gin.Context, msg string, err error) {
	zap.L().Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
}

// UniqueDoctorsHandler returns the number of distinct doctors.
func (ah *AdminHandler) UniqueDoctorsHandler(c *gin.Context) {
	count, err := ah.Reports.UniqueDoctors(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to count unique doctors", err)
		return
	}
	c.JSON(http.StatusOK, count)
}

// BookingsByDoctorHandler returns per-doctor service-booking counts.
func (ah *AdminHandler) BookingsByDoctorHandler(c *gin.Context) {
	counts, err := ah.Reports.BookingsByDoctor(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to count bookings by doctor", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// TotalEarningsAllDoctorsHandler returns the global earnings sum.
func (ah *AdminHandler) TotalEarningsAllDoctorsHandler(c *gin.Context) {
	total, err := ah.Reports.TotalEarningsAllDoctors(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to sum total earnings", err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// TotalEarningsByDoctorHandler returns per-doctor earnings sums.
func (ah *AdminHandler) TotalEarningsByDoctorHandler(c *gin.Context) {
	earnings, err := ah.Reports.TotalEarningsByDoctor(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to sum earnings by doctor", err)
		return
	}
	c.JSON(http.StatusOK, earnings)
}

// TopEarningDoctorsHandler returns the top doctors by earnings, descending.
func (ah *AdminHandler) TopEarningDoctorsHandler(c *gin.Context) {
	top, err := ah.Reports.TopEarningDoctors(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to rank top earning doctors", err)
		return
	}
	c.JSON(http.StatusOK, top)
}

// ServiceCategoriesByDoctorHandler returns per-doctor category counts.
func (ah *AdminHandler) ServiceCategoriesByDoctorHandler(c *gin.Context) {
	categories, err := ah.Reports.ServiceCategoriesByDoctor(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to group service categories by doctor", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// EarningsByServiceCategoryByDoctorHandler returns per-doctor category earnings.
func (ah *AdminHandler) EarningsByServiceCategoryByDoctorHandler(c *gin.Context) {
	earnings, err := ah.Reports.EarningsByServiceCategoryByDoctor(c.Request.Context())
	if err != nil {
		serverError(c, "Failed to group earnings by service category", err)
		return
	}
	c.JSON(http.StatusOK, earnings)
}

// SearchBookingsHandler runs the filtered booking search. All parameters
// are optional; duration is accepted but applies no filter.
func (ah *AdminHandler) SearchBookingsHandler(c *gin.Context) {
	criteria := bookingRepo.SearchCriteria{
		DoctorName:   c.Query("doctorName"),
		CustomerName: c.Query("customerName"),
		StartTime:    c.Query("startTime"),
		EndTime:      c.Query("endTime"),
		Duration:     c.Query("duration"),
		PhoneNumber:  c.Query("phoneNumber"),
		Earnings:     c.Query("earnings"),
	}

	bookings, err := ah.Reports.SearchBookings(c.Request.Context(), criteria)
	if err != nil {
		serverError(c, "Failed to search bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
