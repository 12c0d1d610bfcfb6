package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sshuster/job-hero-dashboard/internal/core/domain"
)

const collectionListings = "listings"

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection(collectionListings)}
}

// listingDoc is the persisted shape. Tags are stored as a single JSON-encoded
// string; decoding on read reproduces the exact ordered list last written.
type listingDoc struct {
	ID          string               `bson:"_id"`
	OwnerID     string               `bson:"owner_id"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	Category    string               `bson:"category"`
	Status      domain.ListingStatus `bson:"status"`

	Company  string `bson:"company,omitempty"`
	Location string `bson:"location,omitempty"`
	Salary   string `bson:"salary,omitempty"`
	JobType  string `bson:"job_type,omitempty"`

	Price          float64  `bson:"price"`
	Budget         float64  `bson:"budget"`
	LeadsCount     int      `bson:"leads_count"`
	ResponsesCount int      `bson:"responses_count"`
	ConversionRate *float64 `bson:"conversion_rate,omitempty"`

	Tags string `bson:"tags"`

	ImageURL     string `bson:"image_url,omitempty"`
	ContactEmail string `bson:"contact_email,omitempty"`
	ContactPhone string `bson:"contact_phone,omitempty"`

	PostedDate string `bson:"posted_date"`
}

// Create inserts a new listing document, assigning its id.
func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toListingDoc(l)
	if doc.ID == "" {
		doc.ID = xid.New().String()
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}

	return fromListingDoc(doc), nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc listingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return fromListingDoc(doc), nil
}

// Update replaces the whole document in one atomic write, which is the
// serialization boundary for concurrent updates to the same listing.
func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": l.ID}, toListingDoc(l))
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// Delete removes the document permanently.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// ListByStatuses returns all listings whose status is in the set, sorted by
// id so a snapshot read is stable.
func (r *ListingRepository) ListByStatuses(ctx context.Context, statuses []domain.ListingStatus) ([]*domain.Listing, error) {
	return r.list(ctx, bson.M{"status": bson.M{"$in": statuses}})
}

// ListByOwner returns all the owner's listings regardless of status.
func (r *ListingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Listing, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

// EnsureIndexes creates necessary indexes on the listings collection.
func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ListingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer cur.Close(ctx)

	listings := make([]*domain.Listing, 0)
	for cur.Next(ctx) {
		var doc listingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode listing: %w", err)
		}
		listings = append(listings, fromListingDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

func toListingDoc(l *domain.Listing) listingDoc {
	return listingDoc{
		ID:             l.ID,
		OwnerID:        l.OwnerID,
		Title:          l.Title,
		Description:    l.Description,
		Category:       l.Category,
		Status:         l.Status,
		Company:        l.Company,
		Location:       l.Location,
		Salary:         l.Salary,
		JobType:        l.JobType,
		Price:          l.Price,
		Budget:         l.Budget,
		LeadsCount:     l.LeadsCount,
		ResponsesCount: l.ResponsesCount,
		ConversionRate: l.ConversionRate,
		Tags:           domain.EncodeTags(l.Tags),
		ImageURL:       l.ImageURL,
		ContactEmail:   l.ContactEmail,
		ContactPhone:   l.ContactPhone,
		PostedDate:     l.PostedDate,
	}
}

func fromListingDoc(doc listingDoc) *domain.Listing {
	return &domain.Listing{
		ID:             doc.ID,
		OwnerID:        doc.OwnerID,
		Title:          doc.Title,
		Description:    doc.Description,
		Category:       doc.Category,
		Status:         doc.Status,
		Company:        doc.Company,
		Location:       doc.Location,
		Salary:         doc.Salary,
		JobType:        doc.JobType,
		Price:          doc.Price,
		Budget:         doc.Budget,
		LeadsCount:     doc.LeadsCount,
		ResponsesCount: doc.ResponsesCount,
		ConversionRate: doc.ConversionRate,
		Tags:           domain.DecodeTags(doc.Tags),
		ImageURL:       doc.ImageURL,
		ContactEmail:   doc.ContactEmail,
		ContactPhone:   doc.ContactPhone,
		PostedDate:     doc.PostedDate,
	}
}
