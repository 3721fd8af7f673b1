package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/repository"
)

type contentRepository struct {
	DB *mongo.Database
}

var _ domain.ContentRepository = (*contentRepository)(nil)

// NewContentRepository will create the mongo backed content store
func NewContentRepository(db *mongo.Database) *contentRepository {
	return &contentRepository{db}
}

func (m *contentRepository) find(ctx context.Context, kind domain.Kind, filter bson.M, opts *options.FindOptions) ([]domain.ContentItem, error) {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translateError(err)
	}
	var docs []itemDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateError(err)
	}

	res := make([]domain.ContentItem, len(docs))
	for i := range docs {
		res[i] = docs[i].toDomain(kind)
	}
	return res, nil
}

func (m *contentRepository) Fetch(ctx context.Context, kind domain.Kind, cursor string, num int64) ([]domain.ContentItem, error) {
	var afterTime time.Time
	var afterID string
	if cursor != "" {
		var err error
		if afterTime, afterID, err = repository.DecodeCursor(cursor); err != nil {
			return nil, domain.InvalidField("cursor")
		}
	}

	repository.PageVerify(&num)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(num)
	return m.find(ctx, kind, afterFilter(afterTime, afterID), opts)
}

// afterFilter matches documents sorting after (createdAt, _id)
func afterFilter(t time.Time, id string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"createdAt": bson.M{"$gt": t}},
		bson.M{"createdAt": t, "_id": bson.M{"$gt": id}},
	}}
}

func (m *contentRepository) GetByID(ctx context.Context, kind domain.Kind, id string) (domain.ContentItem, error) {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return domain.ContentItem{}, err
	}
	var doc itemDocument
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return domain.ContentItem{}, translateError(err)
	}
	return doc.toDomain(kind), nil
}

func (m *contentRepository) FetchByCategory(ctx context.Context, kind domain.Kind, category string, limit int64) ([]domain.ContentItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetLimit(limit)
	return m.find(ctx, kind, bson.M{"category": category}, opts)
}

func (m *contentRepository) Store(ctx context.Context, item *domain.ContentItem) error {
	coll, err := collection(m.DB, item.Kind)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}
	_, err = coll.InsertOne(ctx, newItemDocument(item))
	return translateError(err)
}

// Update only $sets the descriptive fields, so it can never clobber a
// concurrent like or comment.
func (m *contentRepository) Update(ctx context.Context, item *domain.ContentItem) error {
	coll, err := collection(m.DB, item.Kind)
	if err != nil {
		return err
	}
	var d itemDocument
	d.setDescriptive(item)
	set := bson.M{
		"photo":          d.Photo,
		"name":           d.Name,
		"name_ar":        d.NameAr,
		"sku":            d.SKU,
		"category":       d.Category,
		"category_ar":    d.CategoryAr,
		"code":           d.Code,
		"description":    d.Description,
		"description_ar": d.DescriptionAr,
		"tags":           d.Tags,
		"tags_ar":        d.TagsAr,
		"image":          d.Image,
		"blogItems":      d.BlogItems,
		"videoUrl":       d.VideoURL,
		"updatedAt":      item.UpdatedAt,
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": item.ID}, bson.M{"$set": set})
	if err != nil {
		return translateError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *contentRepository) Delete(ctx context.Context, kind domain.Kind, id string) error {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateError(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *contentRepository) FetchIDs(ctx context.Context, kind domain.Kind, cursor string, limit int64) ([]string, error) {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 1})
	cur, err := coll.Find(ctx, bson.M{"_id": bson.M{"$gt": cursor}}, opts)
	if err != nil {
		return nil, translateError(err)
	}
	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateError(err)
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}
