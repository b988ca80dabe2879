package bookingRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUnwindServices(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "$unwind", Value: "$bookedServices"}}, unwindServices())
}

func TestBookingsByDoctorPipeline(t *testing.T) {
	pipeline := bookingsByDoctorPipeline()
	require.Len(t, pipeline, 2)

	assert.Equal(t, unwindServices(), pipeline[0])
	assert.Equal(t, bson.D{{Key: "$group", Value: bson.M{
		"_id":   "$doctorUsername",
		"count": bson.M{"$sum": 1},
	}}}, pipeline[1])
}

func TestEarningsReducerCountsOnlySuccessfulPayments(t *testing.T) {
	expected := bson.M{
		"$sum": bson.M{
			"$cond": bson.A{
				bson.M{"$eq": bson.A{"$bookedServices.isPaymentSuccessful", true}},
				"$bookedServices.amount",
				0,
			},
		},
	}
	assert.Equal(t, expected, earningsReducer())
}

func TestTotalEarningsPipelineGroupsGlobally(t *testing.T) {
	pipeline := totalEarningsPipeline()
	require.Len(t, pipeline, 2)

	group := pipeline[1]
	require.Equal(t, "$group", group[0].Key)
	groupExpr, ok := group[0].Value.(bson.M)
	require.True(t, ok)
	assert.Nil(t, groupExpr["_id"])
	assert.Equal(t, earningsReducer(), groupExpr["totalEarnings"])
}

func TestEarningsByDoctorPipeline(t *testing.T) {
	pipeline := earningsByDoctorPipeline()
	require.Len(t, pipeline, 2)

	assert.Equal(t, bson.D{{Key: "$group", Value: bson.M{
		"_id":           "$doctorUsername",
		"totalEarnings": earningsReducer(),
	}}}, pipeline[1])
}

func TestTopEarningDoctorsPipeline(t *testing.T) {
	pipeline := topEarningDoctorsPipeline(10)
	require.Len(t, pipeline, 4)

	// The ranking builds on the per-doctor earnings grouping.
	assert.Equal(t, earningsByDoctorPipeline(), pipeline[:2])

	// Descending earnings with doctor ascending as deterministic tie-break.
	assert.Equal(t, bson.D{{Key: "$sort", Value: bson.D{
		{Key: "totalEarnings", Value: -1},
		{Key: "_id", Value: 1},
	}}}, pipeline[2])

	assert.Equal(t, bson.D{{Key: "$limit", Value: 10}}, pipeline[3])
}

func TestPerDoctorCategoryPipelineShape(t *testing.T) {
	tests := []struct {
		name         string
		pipeline     []bson.D
		reducedField string
		pushAs       string
	}{
		{
			name:         "service category counts",
			pipeline:     serviceCategoriesByDoctorPipeline(),
			reducedField: "count",
			pushAs:       "serviceCategories",
		},
		{
			name:         "service category earnings",
			pipeline:     earningsByCategoryByDoctorPipeline(),
			reducedField: "totalEarnings",
			pushAs:       "earningsByServiceCategory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.pipeline, 3)
			assert.Equal(t, unwindServices(), tt.pipeline[0])

			// First stage groups on the compound (doctor, category) key.
			firstGroup, ok := tt.pipeline[1][0].Value.(bson.M)
			require.True(t, ok)
			assert.Equal(t, bson.M{
				"doctor":          "$doctorUsername",
				"serviceCategory": "$bookedServices.serviceCategory",
			}, firstGroup["_id"])
			assert.Contains(t, firstGroup, tt.reducedField)

			// Second stage regroups by doctor and collects category entries.
			secondGroup, ok := tt.pipeline[2][0].Value.(bson.M)
			require.True(t, ok)
			assert.Equal(t, "$_id.doctor", secondGroup["_id"])
			assert.Equal(t, bson.M{
				"$push": bson.M{
					"serviceCategory": "$_id.serviceCategory",
					tt.reducedField:   "$" + tt.reducedField,
				},
			}, secondGroup[tt.pushAs])
		})
	}
}
