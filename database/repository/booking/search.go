package bookingRepo

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

// comparison is the kind of constraint a predicate applies to its field.
type comparison int

const (
	compareEqual comparison = iota
	compareGTE
	compareLTE
	compareSubstring
)

// predicate is one field-level search constraint. The criteria expand to a
// finite predicate list combined by conjunction.
type predicate struct {
	field string
	op    comparison
	value interface{}
}

// predicates expands the criteria into the list of active constraints.
// Absent fields contribute nothing; Duration never contributes (see
// SearchCriteria).
func (c SearchCriteria) predicates() []predicate {
	var preds []predicate
	if c.DoctorName != "" {
		preds = append(preds, predicate{"doctorUsername", compareEqual, c.DoctorName})
	}
	if c.CustomerName != "" {
		preds = append(preds, predicate{"bookedServices.customerName", compareSubstring, escapeRegex(c.CustomerName)})
	}
	if c.StartTime != "" {
		preds = append(preds, predicate{"bookedServices.meetingStartTime", compareGTE, c.StartTime})
	}
	if c.EndTime != "" {
		preds = append(preds, predicate{"bookedServices.meetingEndTime", compareLTE, c.EndTime})
	}
	if c.PhoneNumber != "" {
		preds = append(preds, predicate{"bookedServices.customerPhoneNumber", compareEqual, c.PhoneNumber})
	}
	if c.Earnings != "" {
		preds = append(preds, predicate{"bookedServices.amount", compareEqual, earningsValue(c.Earnings)})
	}
	return preds
}

// buildFilter assembles the Mongo filter from a predicate list. An empty
// list yields the match-everything filter.
func buildFilter(preds []predicate) bson.M {
	filter := bson.M{}
	for _, p := range preds {
		switch p.op {
		case compareEqual:
			filter[p.field] = p.value
		case compareGTE:
			filter[p.field] = bson.M{"$gte": p.value}
		case compareLTE:
			filter[p.field] = bson.M{"$lte": p.value}
		case compareSubstring:
			filter[p.field] = bson.M{"$regex": p.value, "$options": "i"}
		}
	}
	return filter
}

// earningsValue matches numerically when the input parses as a number;
// otherwise the raw string passes through uninterpreted (and matches no
// numeric amount). Filter values are deliberately not validated.
func earningsValue(raw string) interface{} {
	if amount, err := strconv.ParseFloat(raw, 64); err == nil {
		return amount
	}
	return raw
}

const regexMetaChars = `-[]{}()*+?.,\^$|#`

// escapeRegex backslash-escapes regex metacharacters and whitespace so user
// input is matched literally.
func escapeRegex(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(regexMetaChars, r) || unicode.IsSpace(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// searchProjection trims results to doctorUsername plus the search-relevant
// service subfields. The embedded array is projected, not filtered: a
// matching booking returns all of its service entries' projected fields.
func searchProjection() bson.M {
	return bson.M{
		"doctorUsername":                     1,
		"bookedServices.customerName":        1,
		"bookedServices.meetingStartTime":    1,
		"bookedServices.meetingEndTime":      1,
		"bookedServices.amount":              1,
		"bookedServices.customerPhoneNumber": 1,
	}
}

// Search returns projected bookings matching all supplied criteria.
func (r *MongoBookingRepo) Search(ctx context.Context, criteria SearchCriteria) ([]models.BookingSearchRow, error) {
	filter := buildFilter(criteria.predicates())
	opts := options.Find().SetProjection(searchProjection())

	results := make([]models.BookingSearchRow, 0)
	if err := r.find(ctx, filter, opts, &results); err != nil {
		return nil, err
	}
	return results, nil
}
