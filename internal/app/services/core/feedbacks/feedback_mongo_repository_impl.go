package feedbacks

import (
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackMongoRepository struct {
	Collection *mongo.Collection
}

func NewFeedbackMongoRepository(db *mongo.Client, dbName string) contracts.FeedbackRepository {
	return &FeedbackMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFeedbacks),
	}
}

func (r *FeedbackMongoRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) (string, error) {
	result, err := r.Collection.InsertOne(ctx, feedback)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *FeedbackMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.Collection.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &feedback, nil
}

func (r *FeedbackMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return feedbacks, nil
}

// AggregateDoctorStats groups the doctor's ratings in one pipeline pass.
func (r *FeedbackMongoRepository) AggregateDoctorStats(ctx context.Context, doctorID string) (*responses.FeedbackStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"doctorId": doctorID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$rating",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		Rating int `bson:"_id"`
		Count  int `bson:"count"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}

	stats := &responses.FeedbackStats{
		DoctorID:     doctorID,
		RatingCounts: map[int]int{},
	}
	sum := 0
	for _, bucket := range buckets {
		stats.RatingCounts[bucket.Rating] = bucket.Count
		stats.TotalCount += bucket.Count
		sum += bucket.Rating * bucket.Count
	}
	if stats.TotalCount > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalCount)
	}
	return stats, nil
}
