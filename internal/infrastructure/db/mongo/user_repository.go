package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

const usersCollection = "users"

// ageBucketBoundaries are the fixed histogram boundaries for the age
// distribution; ages outside the range fall into the "Other" bucket.
var ageBucketBoundaries = bson.A{0, 18, 30, 50, 65, 150}

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Age       *int               `bson:"age,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Age:       d.Age,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Name:      user.Name,
		Email:     user.Email,
		Age:       user.Age,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		ID:        oid,
		Name:      user.Name,
		Email:     user.Email,
		Age:       user.Age,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns a page of users matching filter plus the total count under
// the same filter.
func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := listQuery(filter)

	opts := options.Find().
		SetSort(bson.D{{Key: sortField(filter.SortBy), Value: sortDirection(filter.SortOrder)}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("list users decode: %w", err)
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users := make([]*domain.User, len(docs))
	for i := range docs {
		users[i] = docs[i].toDomain()
	}
	return users, total, nil
}

func listQuery(filter ports.ListUsersFilter) bson.M {
	query := bson.M{}

	if filter.AgeMin != nil || filter.AgeMax != nil {
		age := bson.M{}
		if filter.AgeMin != nil {
			age["$gte"] = *filter.AgeMin
		}
		if filter.AgeMax != nil {
			age["$lte"] = *filter.AgeMax
		}
		query["age"] = age
	}

	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
		}
	}

	return query
}

func sortField(sortBy string) string {
	if sortBy == "createdAt" {
		return "created_at"
	}
	return sortBy
}

func sortDirection(order string) int {
	if order == "asc" {
		return 1
	}
	return -1
}

// Stats runs the overview and age-distribution aggregations. The overview
// counts all users; average/min/max only consider documents with an age.
func (r *UserRepository) Stats(ctx context.Context) (*ports.StatsOverview, []ports.AgeBucket, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	overview, err := r.statsOverview(ctx)
	if err != nil {
		return nil, nil, err
	}

	distribution, err := r.ageDistribution(ctx)
	if err != nil {
		return nil, nil, err
	}

	return overview, distribution, nil
}

func (r *UserRepository) statsOverview(ctx context.Context) (*ports.StatsOverview, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalUsers", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avgAge", Value: bson.D{{Key: "$avg", Value: "$age"}}},
			{Key: "minAge", Value: bson.D{{Key: "$min", Value: "$age"}}},
			{Key: "maxAge", Value: bson.D{{Key: "$max", Value: "$age"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "totalUsers", Value: 1},
			{Key: "avgAge", Value: bson.D{{Key: "$round", Value: bson.A{"$avgAge", 2}}}},
			{Key: "minAge", Value: 1},
			{Key: "maxAge", Value: 1},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("stats overview: %w", err)
	}
	defer cursor.Close(ctx)

	// Age fields are null when no user carries an age; decode through
	// pointers and default to zero.
	var rows []struct {
		TotalUsers int64    `bson:"totalUsers"`
		AvgAge     *float64 `bson:"avgAge"`
		MinAge     *int     `bson:"minAge"`
		MaxAge     *int     `bson:"maxAge"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("stats overview decode: %w", err)
	}

	overview := &ports.StatsOverview{}
	if len(rows) > 0 {
		overview.TotalUsers = rows[0].TotalUsers
		if rows[0].AvgAge != nil {
			overview.AvgAge = *rows[0].AvgAge
		}
		if rows[0].MinAge != nil {
			overview.MinAge = *rows[0].MinAge
		}
		if rows[0].MaxAge != nil {
			overview.MaxAge = *rows[0].MaxAge
		}
	}
	return overview, nil
}

func (r *UserRepository) ageDistribution(ctx context.Context) ([]ports.AgeBucket, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "age", Value: bson.D{
				{Key: "$exists", Value: true},
				{Key: "$ne", Value: nil},
			}},
		}}},
		bson.D{{Key: "$bucket", Value: bson.D{
			{Key: "groupBy", Value: "$age"},
			{Key: "boundaries", Value: ageBucketBoundaries},
			{Key: "default", Value: "Other"},
			{Key: "output", Value: bson.D{
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "users", Value: bson.D{{Key: "$push", Value: bson.D{
					{Key: "name", Value: "$name"},
					{Key: "age", Value: "$age"},
				}}}},
			}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("age distribution: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []ports.AgeBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("age distribution decode: %w", err)
	}
	return buckets, nil
}

// EnsureIndexes creates the indexes backing email uniqueness and the common
// list sorts. The unique email index is the backstop for the create/update
// pre-checks against concurrent writers.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "age", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
