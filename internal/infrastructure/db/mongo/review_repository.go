package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/reelhub/media-api/internal/core/domain"
)

const reviewsCollection = "reviews"

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(reviewsCollection)}
}

type mongoReview struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	User        primitive.ObjectID `bson:"user"`
	Content     string             `bson:"content"`
	MediaType   string             `bson:"mediaType"`
	MediaID     string             `bson:"mediaId"`
	MediaTitle  string             `bson:"mediaTitle"`
	MediaPoster string             `bson:"mediaPoster"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// mongoReviewWithAuthor is the shape produced by the $lookup pipeline.
type mongoReviewWithAuthor struct {
	Review mongoReview `bson:",inline"`
	Author *mongoUser  `bson:"author,omitempty"`
}

func (mr *mongoReview) toDomain() *domain.Review {
	return &domain.Review{
		ID:          mr.ID.Hex(),
		UserID:      mr.User.Hex(),
		Content:     mr.Content,
		MediaType:   mr.MediaType,
		MediaID:     mr.MediaID,
		MediaTitle:  mr.MediaTitle,
		MediaPoster: mr.MediaPoster,
		CreatedAt:   mr.CreatedAt.UTC(),
		UpdatedAt:   mr.UpdatedAt.UTC(),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	uid, ok := objectID(review.UserID)
	if !ok {
		return nil, fmt.Errorf("insert review: invalid user id %q", review.UserID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReview{
		User:        uid,
		Content:     review.Content,
		MediaType:   review.MediaType,
		MediaID:     review.MediaID,
		MediaTitle:  review.MediaTitle,
		MediaPoster: review.MediaPoster,
		CreatedAt:   review.CreatedAt,
		UpdatedAt:   review.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ReviewRepository) DeleteForUser(ctx context.Context, userID, reviewID string) error {
	uid, ok := objectID(userID)
	if !ok {
		return domain.ErrNotFound
	}
	rid, ok := objectID(reviewID)
	if !ok {
		return domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": rid, "user": uid})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	uid, ok := objectID(userID)
	if !ok {
		return []*domain.Review{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	var docs []mongoReview
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	out := make([]*domain.Review, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// ListByMedia joins each review with its author. Credential fields are
// projected away inside the pipeline.
func (r *ReviewRepository) ListByMedia(ctx context.Context, mediaID string) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"mediaId": mediaID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$author", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{"author.password": 0, "author.salt": 0}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate reviews: %w", err)
	}

	var docs []mongoReviewWithAuthor
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	out := make([]*domain.Review, 0, len(docs))
	for i := range docs {
		rv := docs[i].Review.toDomain()
		if docs[i].Author != nil {
			rv.Author = docs[i].Author.toDomain()
		}
		out = append(out, rv)
	}
	return out, nil
}

func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "mediaId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
