package repositories

import (
	"context"
	"fmt"
	"time"

	"wegotboard/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/datatypes"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	users *mongoCollection[models.User]
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		users: newMongoCollection(db, "users", "user", func(u *models.User) *string { return &u.ID }),
	}
}

func (r *MongoUserRepository) Create(user *models.User) error {
	if user.Favorites == nil {
		user.Favorites = datatypes.JSONSlice[string]{}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	return r.users.insert(user)
}

func (r *MongoUserRepository) GetByID(id string) (*models.User, error) {
	return r.users.get(id)
}

func (r *MongoUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.users.findOne(bson.M{"email": email}, "email "+email)
}

func (r *MongoUserRepository) Update(user *models.User) error {
	user.UpdatedAt = time.Now()
	return r.users.replace(user)
}

func (r *MongoUserRepository) Delete(id string) error {
	return r.users.remove(id)
}

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	products *mongoCollection[models.Product]
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		products: newMongoCollection(db, "products", "product", func(p *models.Product) *string { return &p.ID }),
	}
}

func (r *MongoProductRepository) GetAll() ([]models.Product, error) {
	return r.products.find(bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

func (r *MongoProductRepository) GetByID(id string) (*models.Product, error) {
	return r.products.get(id)
}

func (r *MongoProductRepository) GetByIDs(ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	return r.products.find(bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoProductRepository) Create(product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	return r.products.insert(product)
}

func (r *MongoProductRepository) Update(product *models.Product) error {
	product.UpdatedAt = time.Now()
	return r.products.replace(product)
}

func (r *MongoProductRepository) Delete(id string) error {
	return r.products.remove(id)
}

// MongoReviewRepository is a MongoDB implementation of ReviewRepository.
type MongoReviewRepository struct {
	reviews *mongoCollection[models.UserReview]
}

func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{
		reviews: newMongoCollection(db, "userreviews", "review", func(rv *models.UserReview) *string { return &rv.ID }),
	}
}

func (r *MongoReviewRepository) GetAll() ([]models.UserReview, error) {
	return r.reviews.find(bson.M{})
}

func (r *MongoReviewRepository) GetByProduct(productID string) ([]models.UserReview, error) {
	return r.reviews.find(bson.M{"product": productID})
}

func (r *MongoReviewRepository) GetByID(id string) (*models.UserReview, error) {
	return r.reviews.get(id)
}

func (r *MongoReviewRepository) Create(review *models.UserReview) error {
	return r.reviews.insert(review)
}

func (r *MongoReviewRepository) Update(review *models.UserReview) error {
	return r.reviews.replace(review)
}

func (r *MongoReviewRepository) Delete(id string) error {
	return r.reviews.remove(id)
}

// MongoCategoryRepository is a MongoDB implementation of CategoryRepository.
type MongoCategoryRepository struct {
	categories *mongoCollection[models.Category]
}

func NewMongoCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{
		categories: newMongoCollection(db, "categories", "category", func(c *models.Category) *string { return &c.ID }),
	}
}

func (r *MongoCategoryRepository) GetAll() ([]models.Category, error) {
	return r.categories.find(bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *MongoCategoryRepository) GetByID(id string) (*models.Category, error) {
	return r.categories.get(id)
}

func (r *MongoCategoryRepository) Create(category *models.Category) error {
	return r.categories.insert(category)
}

// MongoTagRepository is a MongoDB implementation of TagRepository.
type MongoTagRepository struct {
	tags *mongoCollection[models.Tag]
}

func NewMongoTagRepository(db *mongo.Database) *MongoTagRepository {
	return &MongoTagRepository{
		tags: newMongoCollection(db, "tags", "tag", func(t *models.Tag) *string { return &t.ID }),
	}
}

func (r *MongoTagRepository) GetAll() ([]models.Tag, error) {
	return r.tags.find(bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *MongoTagRepository) GetByID(id string) (*models.Tag, error) {
	return r.tags.get(id)
}

func (r *MongoTagRepository) Create(tag *models.Tag) error {
	return r.tags.insert(tag)
}

// NewMongoRepositories wires one MongoDB repository per collection on db.
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:      NewMongoUserRepository(db),
		Products:   NewMongoProductRepository(db),
		Reviews:    NewMongoReviewRepository(db),
		Categories: NewMongoCategoryRepository(db),
		Tags:       NewMongoTagRepository(db),
	}
}

// EnsureMongoIndexes creates the indexes the repositories rely on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}
	_, err = db.Collection("userreviews").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "product", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create userreviews product index: %w", err)
	}
	return nil
}
