package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/reelhub/media-api/internal/core/domain"
)

const favoritesCollection = "favorites"

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{col: db.Collection(favoritesCollection)}
}

type mongoFavorite struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	User        primitive.ObjectID `bson:"user"`
	MediaType   string             `bson:"mediaType"`
	MediaID     string             `bson:"mediaId"`
	MediaTitle  string             `bson:"mediaTitle"`
	MediaPoster string             `bson:"mediaPoster"`
	MediaRate   float64            `bson:"mediaRate"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (mf *mongoFavorite) toDomain() *domain.Favorite {
	return &domain.Favorite{
		ID:          mf.ID.Hex(),
		UserID:      mf.User.Hex(),
		MediaType:   mf.MediaType,
		MediaID:     mf.MediaID,
		MediaTitle:  mf.MediaTitle,
		MediaPoster: mf.MediaPoster,
		MediaRate:   mf.MediaRate,
		CreatedAt:   mf.CreatedAt.UTC(),
		UpdatedAt:   mf.UpdatedAt.UTC(),
	}
}

func (r *FavoriteRepository) FindByUserAndMedia(ctx context.Context, userID, mediaID string) (*domain.Favorite, error) {
	uid, ok := objectID(userID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mf mongoFavorite
	err := r.col.FindOne(ctx, bson.M{"user": uid, "mediaId": mediaID}).Decode(&mf)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find favorite: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FavoriteRepository) Create(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error) {
	uid, ok := objectID(fav.UserID)
	if !ok {
		return nil, fmt.Errorf("insert favorite: invalid user id %q", fav.UserID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoFavorite{
		User:        uid,
		MediaType:   fav.MediaType,
		MediaID:     fav.MediaID,
		MediaTitle:  fav.MediaTitle,
		MediaPoster: fav.MediaPoster,
		MediaRate:   fav.MediaRate,
		CreatedAt:   fav.CreatedAt,
		UpdatedAt:   fav.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert favorite: %w", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// DeleteForUser removes a favorite only if it belongs to userID.
func (r *FavoriteRepository) DeleteForUser(ctx context.Context, userID, favoriteID string) error {
	uid, ok := objectID(userID)
	if !ok {
		return domain.ErrNotFound
	}
	fid, ok := objectID(favoriteID)
	if !ok {
		return domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": fid, "user": uid})
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser returns the user's favorites, newest first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	uid, ok := objectID(userID)
	if !ok {
		return []*domain.Favorite{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	var docs []mongoFavorite
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}

	out := make([]*domain.Favorite, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// EnsureIndexes creates the lookup indexes used by the favorite queries.
func (r *FavoriteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "mediaId", Value: 1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
