package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Report rows decode straight out of aggregation cursors; group keys keep
// their `_id` name on the wire.

// DoctorBookingCount is one doctor's service-booking row count.
type DoctorBookingCount struct {
	Doctor string `bson:"_id" json:"_id"`
	Count  int64  `bson:"count" json:"count"`
}

// DoctorEarnings is one doctor's successful-payment earnings total.
type DoctorEarnings struct {
	Doctor        string  `bson:"_id" json:"_id"`
	TotalEarnings float64 `bson:"totalEarnings" json:"totalEarnings"`
}

// CategoryCount is a booking count within one service category.
type CategoryCount struct {
	ServiceCategory string `bson:"serviceCategory" json:"serviceCategory"`
	Count           int64  `bson:"count" json:"count"`
}

// DoctorServiceCategories groups a doctor's booking counts by category.
type DoctorServiceCategories struct {
	Doctor            string          `bson:"_id" json:"_id"`
	ServiceCategories []CategoryCount `bson:"serviceCategories" json:"serviceCategories"`
}

// CategoryEarnings is the earnings total within one service category.
type CategoryEarnings struct {
	ServiceCategory string  `bson:"serviceCategory" json:"serviceCategory"`
	TotalEarnings   float64 `bson:"totalEarnings" json:"totalEarnings"`
}

// DoctorCategoryEarnings groups a doctor's earnings by category.
type DoctorCategoryEarnings struct {
	Doctor                    string             `bson:"_id" json:"_id"`
	EarningsByServiceCategory []CategoryEarnings `bson:"earningsByServiceCategory" json:"earningsByServiceCategory"`
}

// BookingSearchRow is a Booking projected down to the search-relevant fields.
type BookingSearchRow struct {
	ID             primitive.ObjectID      `bson:"_id" json:"_id"`
	DoctorUsername string                  `bson:"doctorUsername" json:"doctorUsername"`
	BookedServices []ServiceBookingSummary `bson:"bookedServices" json:"bookedServices"`
}

// ServiceBookingSummary is the projected subset of a ServiceBooking returned
// by the filtered search.
type ServiceBookingSummary struct {
	CustomerName        string  `bson:"customerName" json:"customerName"`
	MeetingStartTime    string  `bson:"meetingStartTime" json:"meetingStartTime"`
	MeetingEndTime      string  `bson:"meetingEndTime" json:"meetingEndTime"`
	Amount              float64 `bson:"amount" json:"amount"`
	CustomerPhoneNumber string  `bson:"customerPhoneNumber" json:"customerPhoneNumber"`
}
