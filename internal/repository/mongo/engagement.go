package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Guyuepp/portfolio-cms/domain"
)

type engagementRepository struct {
	DB *mongo.Database
}

var _ domain.EngagementRepository = (*engagementRepository)(nil)

// NewEngagementRepository will create the mongo backed engagement store
func NewEngagementRepository(db *mongo.Database) *engagementRepository {
	return &engagementRepository{db}
}

var aggregateProjection = bson.M{"user": 1, "likeCount": 1, "likedBy": 1, "comments": 1}

func (m *engagementRepository) findAggregate(ctx context.Context, kind domain.Kind, filter bson.M) (domain.Aggregate, error) {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return domain.Aggregate{}, err
	}
	var doc itemDocument
	err = coll.FindOne(ctx, filter, options.FindOne().SetProjection(aggregateProjection)).Decode(&doc)
	if err != nil {
		return domain.Aggregate{}, translateError(err)
	}
	return doc.aggregate(kind), nil
}

func (m *engagementRepository) GetAggregate(ctx context.Context, kind domain.Kind, itemID string) (domain.Aggregate, error) {
	return m.findAggregate(ctx, kind, bson.M{"_id": itemID})
}

func (m *engagementRepository) FindByCommentID(ctx context.Context, kind domain.Kind, commentID string) (domain.Aggregate, error) {
	return m.findAggregate(ctx, kind, bson.M{"comments._id": commentID})
}

// explainMiss tells apart a missing item from a guard that did not match
func explainMiss(ctx context.Context, coll *mongo.Collection, itemID string, guardErr error) error {
	n, err := coll.CountDocuments(ctx, bson.M{"_id": itemID})
	if err != nil {
		return translateError(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return guardErr
}

type likeCountDoc struct {
	LikeCount int64 `bson:"likeCount"`
}

func (m *engagementRepository) AddLike(ctx context.Context, kind domain.Kind, itemID, userID string) (int64, error) {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return 0, err
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"likeCount": 1})

	var doc likeCountDoc
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": itemID, "likedBy": bson.M{"$ne": userID}},
		bson.M{
			"$push": bson.M{"likedBy": userID},
			"$inc":  bson.M{"likeCount": 1},
		},
		opts,
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, explainMiss(ctx, coll, itemID, domain.ErrAlreadyLiked)
	}
	if err != nil {
		return 0, translateError(err)
	}
	return doc.LikeCount, nil
}

// RemoveLike uses an update pipeline so the decrement is clamped at zero in
// the same command that removes the user.
func (m *engagementRepository) RemoveLike(ctx context.Context, kind domain.Kind, itemID, userID string) (int64, error) {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return 0, err
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "likedBy", Value: bson.M{"$filter": bson.M{
				"input": "$likedBy",
				"cond":  bson.M{"$ne": bson.A{"$$this", bson.M{"$literal": userID}}},
			}}},
			{Key: "likeCount", Value: bson.M{"$max": bson.A{0, bson.M{"$subtract": bson.A{"$likeCount", 1}}}}},
		}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"likeCount": 1})

	var doc likeCountDoc
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": itemID, "likedBy": userID}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, explainMiss(ctx, coll, itemID, domain.ErrNotLiked)
	}
	if err != nil {
		return 0, translateError(err)
	}
	return doc.LikeCount, nil
}

func (m *engagementRepository) PushComment(ctx context.Context, kind domain.Kind, itemID string, c domain.Comment) error {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return err
	}
	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": itemID},
		bson.M{
			"$push": bson.M{"comments": newCommentDocument(&c)},
			"$set":  bson.M{"updatedAt": c.CreatedAt},
		},
	)
	if err != nil {
		return translateError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type commentsDoc struct {
	ID       string            `bson:"_id"`
	Comments []commentDocument `bson:"comments"`
}

func (d *commentsDoc) only() (domain.Comment, error) {
	if len(d.Comments) == 0 {
		return domain.Comment{}, domain.ErrNotFound
	}
	return d.Comments[0].toDomain(), nil
}

func (m *engagementRepository) PushReply(ctx context.Context, kind domain.Kind, itemID, commentID string, r domain.Reply) (domain.Comment, error) {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return domain.Comment{}, err
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"comments": bson.M{"$elemMatch": bson.M{"_id": commentID}}})

	var doc commentsDoc
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": itemID, "comments._id": commentID},
		bson.M{"$push": bson.M{"comments.$.replies": newReplyDocument(&r)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return domain.Comment{}, translateError(err)
	}
	return doc.only()
}

func (m *engagementRepository) SetCommentText(ctx context.Context, kind domain.Kind, commentID, text string) (string, domain.Comment, error) {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return "", domain.Comment{}, err
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"comments": bson.M{"$elemMatch": bson.M{"_id": commentID}}})

	var doc commentsDoc
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"comments._id": commentID},
		bson.M{"$set": bson.M{"comments.$.comment": text}},
		opts,
	).Decode(&doc)
	if err != nil {
		return "", domain.Comment{}, translateError(err)
	}
	c, err := doc.only()
	return doc.ID, c, err
}

func (m *engagementRepository) PullComment(ctx context.Context, kind domain.Kind, commentID string) (string, error) {
	coll, err := collection(m.DB, kind)
	if err != nil {
		return "", err
	}
	var doc struct {
		ID string `bson:"_id"`
	}
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"comments._id": commentID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}},
		options.FindOneAndUpdate().SetProjection(bson.M{"_id": 1}),
	).Decode(&doc)
	if err != nil {
		return "", translateError(err)
	}
	return doc.ID, nil
}
