package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "medibook/database/repository/booking"
	"medibook/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubReportService returns canned results, or a single error for every
// operation when err is set.
type stubReportService struct {
	err error

	uniqueDoctors    int
	bookingCounts    []models.DoctorBookingCount
	totalEarnings    float64
	earningsByDoctor []models.DoctorEarnings
	topEarners       []models.DoctorEarnings
	categories       []models.DoctorServiceCategories
	categoryEarnings []models.DoctorCategoryEarnings
	searchRows       []models.BookingSearchRow

	lastCriteria bookingRepo.SearchCriteria
}

func (s *stubReportService) UniqueDoctors(ctx context.Context) (int, error) {
	return s.uniqueDoctors, s.err
}

func (s *stubReportService) BookingsByDoctor(ctx context.Context) ([]models.DoctorBookingCount, error) {
	return s.bookingCounts, s.err
}

func (s *stubReportService) TotalEarningsAllDoctors(ctx context.Context) (float64, error) {
	return s.totalEarnings, s.err
}

func (s *stubReportService) TotalEarningsByDoctor(ctx context.Context) ([]models.DoctorEarnings, error) {
	return s.earningsByDoctor, s.err
}

func (s *stubReportService) TopEarningDoctors(ctx context.Context) ([]models.DoctorEarnings, error) {
	return s.topEarners, s.err
}

func (s *stubReportService) ServiceCategoriesByDoctor(ctx context.Context) ([]models.DoctorServiceCategories, error) {
	return s.categories, s.err
}

func (s *stubReportService) EarningsByServiceCategoryByDoctor(ctx context.Context) ([]models.DoctorCategoryEarnings, error) {
	return s.categoryEarnings, s.err
}

func (s *stubReportService) SearchBookings(ctx context.Context, criteria bookingRepo.SearchCriteria) ([]models.BookingSearchRow, error) {
	s.lastCriteria = criteria
	return s.searchRows, s.err
}

func newAdminRouter(stub *stubReportService) *gin.Engine {
	r := gin.New()
	ah := NewAdminHandler(stub)
	api := r.Group("/api/admin")
	api.GET("/unique-doctors", ah.UniqueDoctorsHandler)
	api.GET("/bookings-by-doctor", ah.BookingsByDoctorHandler)
	api.GET("/total-earnings-all-doctors", ah.TotalEarningsAllDoctorsHandler)
	api.GET("/total-earnings-by-doctor", ah.TotalEarningsByDoctorHandler)
	api.GET("/top-earning-doctors", ah.TopEarningDoctorsHandler)
	api.GET("/service-categories-by-doctor", ah.ServiceCategoriesByDoctorHandler)
	api.GET("/earnings-by-service-category-by-doctor", ah.EarningsByServiceCategoryByDoctorHandler)
	api.GET("/bookings", ah.SearchBookingsHandler)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestUniqueDoctorsHandler(t *testing.T) {
	r := newAdminRouter(&stubReportService{uniqueDoctors: 3})

	w := get(r, "/api/admin/unique-doctors")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", w.Body.String())
}

func TestBookingsByDoctorHandler(t *testing.T) {
	r := newAdminRouter(&stubReportService{bookingCounts: []models.DoctorBookingCount{
		{Doctor: "dr_x", Count: 2},
	}})

	w := get(r, "/api/admin/bookings-by-doctor")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"dr_x","count":2}]`, w.Body.String())
}

func TestTotalEarningsAllDoctorsHandler(t *testing.T) {
	r := newAdminRouter(&stubReportService{totalEarnings: 100})

	w := get(r, "/api/admin/total-earnings-all-doctors")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "100", w.Body.String())
}

func TestTotalEarningsByDoctorHandler(t *testing.T) {
	r := newAdminRouter(&stubReportService{earningsByDoctor: []models.DoctorEarnings{
		{Doctor: "dr_x", TotalEarnings: 100},
	}})

	w := get(r, "/api/admin/total-earnings-by-doctor")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"dr_x","totalEarnings":100}]`, w.Body.String())
}

func TestTopEarningDoctorsHandler(t *testing.T) {
	r := newAdminRouter(&stubReportService{topEarners: []models.DoctorEarnings{
		{Doctor: "dr_a", TotalEarnings: 300},
		{Doctor: "dr_b", TotalEarnings: 200},
	}})

	w := get(r, "/api/admin/top-earning-doctors")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"dr_a","totalEarnings":300},{"_id":"dr_b","totalEarnings":200}]`, w.Body.String())
}

func TestServiceCategoriesByDoctorHandler(t *testing.T) {
	r := newAdminRouter(&stubReportService{categories: []models.DoctorServiceCategories{
		{Doctor: "dr_x", ServiceCategories: []models.CategoryCount{
			{ServiceCategory: "consultation", Count: 2},
		}},
	}})

	w := get(r, "/api/admin/service-categories-by-doctor")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"dr_x","serviceCategories":[{"serviceCategory":"consultation","count":2}]}]`, w.Body.String())
}

func TestSearchBookingsHandlerForwardsAllParams(t *testing.T) {
	stub := &stubReportService{searchRows: []models.BookingSearchRow{}}
	r := newAdminRouter(stub)

	w := get(r, "/api/admin/bookings?doctorName=dr_x&customerName=a.b&startTime=s&endTime=e&duration=30&phoneNumber=p&earnings=100")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, bookingRepo.SearchCriteria{
		DoctorName:   "dr_x",
		CustomerName: "a.b",
		StartTime:    "s",
		EndTime:      "e",
		Duration:     "30",
		PhoneNumber:  "p",
		Earnings:     "100",
	}, stub.lastCriteria)
}

func TestSearchBookingsHandlerEmptyResult(t *testing.T) {
	r := newAdminRouter(&stubReportService{searchRows: []models.BookingSearchRow{}})

	w := get(r, "/api/admin/bookings")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookings":[]}`, w.Body.String())
}

func TestReportHandlersCollapseFailuresTo500(t *testing.T) {
	r := newAdminRouter(&stubReportService{err: errors.New("store down")})

	paths := []string{
		"/api/admin/unique-doctors",
		"/api/admin/bookings-by-doctor",
		"/api/admin/total-earnings-all-doctors",
		"/api/admin/total-earnings-by-doctor",
		"/api/admin/top-earning-doctors",
		"/api/admin/service-categories-by-doctor",
		"/api/admin/earnings-by-service-category-by-doctor",
		"/api/admin/bookings",
	}

	for _, path := range paths {
		w := get(r, path)
		require.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.JSONEq(t, `{"error":"Server Error"}`, w.Body.String(), path)
	}
}
