package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maizul/restaurant-api/internal/core/domain"
)

const (
	collectionMenuItems = "menu_items"
	maxMenuItemsListed  = 500
)

type MenuRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection(collectionMenuItems), now: time.Now}
}

type mongoMenuItem struct {
	ID            string    `bson:"_id"`
	Category      string    `bson:"category"`
	NameES        string    `bson:"name_es"`
	NameEN        string    `bson:"name_en"`
	DescriptionES string    `bson:"description_es"`
	DescriptionEN string    `bson:"description_en"`
	Price         float64   `bson:"price"`
	Image         *string   `bson:"image"`
	IsFeatured    bool      `bson:"is_featured"`
	IsAvailable   bool      `bson:"is_available"`
	SortOrder     int       `bson:"sort_order"`
	Tags          []string  `bson:"tags"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func toMongoMenuItem(it *domain.MenuItem) mongoMenuItem {
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	return mongoMenuItem{
		ID:            it.ID,
		Category:      string(it.Category),
		NameES:        it.NameES,
		NameEN:        it.NameEN,
		DescriptionES: it.DescriptionES,
		DescriptionEN: it.DescriptionEN,
		Price:         it.Price,
		Image:         it.Image,
		IsFeatured:    it.IsFeatured,
		IsAvailable:   it.IsAvailable,
		SortOrder:     it.SortOrder,
		Tags:          tags,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

func (m mongoMenuItem) toDomain() *domain.MenuItem {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.MenuItem{
		ID:            m.ID,
		Category:      domain.Category(m.Category),
		NameES:        m.NameES,
		NameEN:        m.NameEN,
		DescriptionES: m.DescriptionES,
		DescriptionEN: m.DescriptionEN,
		Price:         m.Price,
		Image:         m.Image,
		IsFeatured:    m.IsFeatured,
		IsAvailable:   m.IsAvailable,
		SortOrder:     m.SortOrder,
		Tags:          tags,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

// List returns up to 500 items matching filter ordered by sort_order.
func (r *MenuRepository) List(ctx context.Context, filter domain.MenuFilter) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != nil {
		query["category"] = string(*filter.Category)
	}
	if filter.AvailableOnly {
		query["is_available"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "sort_order", Value: 1}}).
		SetLimit(maxMenuItemsListed)

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, storeErr("list menu items", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoMenuItem
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeErr("decode menu items", err)
	}

	items := make([]*domain.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain())
	}
	return items, nil
}

func (r *MenuRepository) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoMenuItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, storeErr("get menu item", err)
	}
	return doc.toDomain(), nil
}

func (r *MenuRepository) Insert(ctx context.Context, item *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toMongoMenuItem(item)); err != nil {
		return storeErr("insert menu item", err)
	}
	return nil
}

// Update applies the non-nil fields of patch, always refreshing updated_at.
func (r *MenuRepository) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	set := bson.M{"updated_at": r.now().UTC()}
	if patch.Category != nil {
		set["category"] = string(*patch.Category)
	}
	if patch.NameES != nil {
		set["name_es"] = *patch.NameES
	}
	if patch.NameEN != nil {
		set["name_en"] = *patch.NameEN
	}
	if patch.DescriptionES != nil {
		set["description_es"] = *patch.DescriptionES
	}
	if patch.DescriptionEN != nil {
		set["description_en"] = *patch.DescriptionEN
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.IsFeatured != nil {
		set["is_featured"] = *patch.IsFeatured
	}
	if patch.IsAvailable != nil {
		set["is_available"] = *patch.IsAvailable
	}
	if patch.SortOrder != nil {
		set["sort_order"] = *patch.SortOrder
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc mongoMenuItem
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, storeErr("update menu item", err)
	}
	return doc.toDomain(), nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete menu item", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeErr("count menu items", err)
	}
	return n, nil
}

// Reorder sends one unordered bulk of independent updates. Unknown ids match
// nothing and are skipped; updates already applied stay applied on failure.
func (r *MenuRepository) Reorder(ctx context.Context, entries []domain.ReorderEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	now := r.now().UTC()
	models := make([]mongo.WriteModel, 0, len(entries))
	for _, e := range entries {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": e.ID}).
			SetUpdate(bson.M{"$set": bson.M{"sort_order": e.SortOrder, "updated_at": now}}))
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		var matched int64
		if res != nil {
			matched = res.MatchedCount
		}
		return matched, storeErr("reorder menu items", err)
	}
	return res.MatchedCount, nil
}

// EnsureIndexes creates the indexes behind category listings and availability
// filtering.
func (r *MenuRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "sort_order", Value: 1}}},
		{Keys: bson.D{{Key: "is_available", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return storeErr("ensure menu indexes", err)
}
