package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking represents one doctor's batch of booked service appointments.
// A doctor may have many Booking documents over time; doctorUsername is the
// grouping key, not a unique identifier.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DoctorUsername string             `bson:"doctorUsername" json:"doctorUsername"`
	AccountID      string             `bson:"accountId" json:"accountId"`
	DoctorEmail    string             `bson:"doctorEmail" json:"doctorEmail"`
	DoctorTimezone string             `bson:"doctorTimezone" json:"doctorTimezone"`
	BookedServices []ServiceBooking   `bson:"bookedServices" json:"bookedServices"`
}

// ServiceBooking is one purchased appointment slot nested inside a Booking.
// Meeting times are string-encoded timestamps; filter comparisons on them are
// lexicographic, so writers must use a sortable encoding (e.g. ISO-8601).
type ServiceBooking struct {
	BookingID     string `bson:"bookingId" json:"bookingId"`
	OrderID       string `bson:"orderId" json:"orderId"`
	TransactionID string `bson:"transactionId" json:"transactionId"`
	CorrelationID string `bson:"correlationId" json:"correlationId"`

	CustomerName        string `bson:"customerName" json:"customerName"`
	CustomerEmail       string `bson:"customerEmail" json:"customerEmail"`
	CustomerPhoneNumber string `bson:"customerPhoneNumber" json:"customerPhoneNumber"`
	CustomerTimezone    string `bson:"customerTimezone" json:"customerTimezone"`

	Amount              float64 `bson:"amount" json:"amount"`
	Currency            string  `bson:"currency" json:"currency"`
	IsPaymentSuccessful bool    `bson:"isPaymentSuccessful" json:"isPaymentSuccessful"`

	ServiceTitle     string `bson:"serviceTitle" json:"serviceTitle"`
	ServiceCategory  string `bson:"serviceCategory" json:"serviceCategory"`
	ServiceNumber    int    `bson:"serviceNumber" json:"serviceNumber"`
	IsServicePackage bool   `bson:"isServicePackage" json:"isServicePackage"`
	PackageValidity  string `bson:"packageValidity" json:"packageValidity"`

	MeetingStartTime string      `bson:"meetingStartTime" json:"meetingStartTime"`
	MeetingEndTime   string      `bson:"meetingEndTime" json:"meetingEndTime"`
	Date             BookingDate `bson:"date" json:"date"`

	IsRescheduled       bool   `bson:"isRescheduled" json:"isRescheduled"`
	NumberOfReschedules int    `bson:"numberOfReschedules" json:"numberOfReschedules"`
	RescheduledBy       string `bson:"rescheduledBy" json:"rescheduledBy"`
	IsCancelled         bool   `bson:"isCancelled" json:"isCancelled"`

	TransactionStatus string   `bson:"transactionStatus" json:"transactionStatus"`
	BookingStatus     string   `bson:"bookingStatus" json:"bookingStatus"`
	Location          Location `bson:"location" json:"location"`

	QuestionObj     []QuestionAnswer `bson:"questionObj" json:"questionObj"`
	ContextQuestion []QuestionAnswer `bson:"contextQuestion" json:"contextQuestion"`
}

// BookingDate is the denormalized calendar-day descriptor of a booking.
type BookingDate struct {
	Day     int    `bson:"day" json:"day"`
	Month   string `bson:"month" json:"month"`
	WeekDay string `bson:"weekDay" json:"weekDay"`
}

// Location is the customer's location at booking time.
type Location struct {
	Country string `bson:"country" json:"country"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
}

// QuestionAnswer is one free-form question/answer pair attached to a booking.
type QuestionAnswer struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}
