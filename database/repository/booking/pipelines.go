package bookingRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Every report below is built on the same flatten-and-group foundation:
// unwind the embedded bookedServices array into one row per service (carrying
// the parent doctorUsername), then group and reduce. Bookings with an empty
// service list contribute no rows.

// unwindServices flattens bookedServices into one document per service.
func unwindServices() bson.D {
	return bson.D{{Key: "$unwind", Value: "$bookedServices"}}
}

// countReducer counts one per row.
func countReducer() bson.M {
	return bson.M{"$sum": 1}
}

// earningsReducer sums amount only for successfully paid rows; failed or
// absent payments contribute 0.
func earningsReducer() bson.M {
	return bson.M{
		"$sum": bson.M{
			"$cond": bson.A{
				bson.M{"$eq": bson.A{"$bookedServices.isPaymentSuccessful", true}},
				"$bookedServices.amount",
				0,
			},
		},
	}
}

// bookingsByDoctorPipeline counts service rows per doctor.
func bookingsByDoctorPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		unwindServices(),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$doctorUsername",
			"count": countReducer(),
		}}},
	}
}

// totalEarningsPipeline sums earnings over all rows into a single group.
func totalEarningsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		unwindServices(),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalEarnings": earningsReducer(),
		}}},
	}
}

// earningsByDoctorPipeline sums earnings per doctor.
func earningsByDoctorPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		unwindServices(),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           "$doctorUsername",
			"totalEarnings": earningsReducer(),
		}}},
	}
}

// topEarningDoctorsPipeline ranks doctors by earnings. The secondary _id
// sort makes ties deterministic; store iteration order is not stable.
func topEarningDoctorsPipeline(limit int) mongo.Pipeline {
	pipeline := earningsByDoctorPipeline()
	return append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "totalEarnings", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
	)
}

// perDoctorCategoryPipeline is the shared two-stage grouping: reduce per
// (doctor, serviceCategory), then regroup by doctor collecting the
// per-category results under pushAs. reducedField names the reducer output
// in both stages.
func perDoctorCategoryPipeline(reducedField string, reducer bson.M, pushAs string) mongo.Pipeline {
	return mongo.Pipeline{
		unwindServices(),
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"doctor":          "$doctorUsername",
				"serviceCategory": "$bookedServices.serviceCategory",
			},
			reducedField: reducer,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": "$_id.doctor",
			pushAs: bson.M{
				"$push": bson.M{
					"serviceCategory": "$_id.serviceCategory",
					reducedField:      "$" + reducedField,
				},
			},
		}}},
	}
}

// serviceCategoriesByDoctorPipeline counts bookings per category per doctor.
func serviceCategoriesByDoctorPipeline() mongo.Pipeline {
	return perDoctorCategoryPipeline("count", countReducer(), "serviceCategories")
}

// earningsByCategoryByDoctorPipeline sums earnings per category per doctor.
func earningsByCategoryByDoctorPipeline() mongo.Pipeline {
	return perDoctorCategoryPipeline("totalEarnings", earningsReducer(), "earningsByServiceCategory")
}
