package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/repository/mysql/model"
)

type engagementRepository struct {
	DB *gorm.DB
}

var _ domain.EngagementRepository = (*engagementRepository)(nil)

// NewEngagementRepository will create the gorm backed engagement store.
// Every mutation runs in one transaction holding a row lock on the item or
// comment it changes.
func NewEngagementRepository(db *gorm.DB) *engagementRepository {
	return &engagementRepository{db}
}

// loadEngagement fills the like sets and comment trees of aggs in three queries
func loadEngagement(db *gorm.DB, aggs []*domain.Aggregate) error {
	if len(aggs) == 0 {
		return nil
	}
	ids := make([]string, len(aggs))
	byID := make(map[string]*domain.Aggregate, len(aggs))
	for i, a := range aggs {
		ids[i] = a.ID
		byID[a.ID] = a
	}

	var likes []model.ItemLike
	if err := db.Where("item_id IN ?", ids).Order("created_at").Order("user_id").Find(&likes).Error; err != nil {
		return translateError(err)
	}
	for _, l := range likes {
		a := byID[l.ItemID]
		a.LikedBy = append(a.LikedBy, l.UserID)
	}

	var comments []model.Comment
	if err := db.Where("item_id IN ?", ids).Order("created_at").Order("id").Find(&comments).Error; err != nil {
		return translateError(err)
	}
	if len(comments) == 0 {
		return nil
	}

	var replies []model.Reply
	if err := db.Where("item_id IN ?", ids).Order("created_at").Order("id").Find(&replies).Error; err != nil {
		return translateError(err)
	}
	repliesOf := make(map[string][]domain.Reply)
	for i := range replies {
		repliesOf[replies[i].CommentID] = append(repliesOf[replies[i].CommentID], replies[i].ToDomain())
	}

	for i := range comments {
		c := comments[i].ToDomain()
		if rs, ok := repliesOf[c.ID]; ok {
			c.Replies = rs
		}
		a := byID[comments[i].ItemID]
		a.Comments = append(a.Comments, c)
	}
	return nil
}

// lockItem takes a row lock on the item and returns its current counter
func lockItem(tx *gorm.DB, kind domain.Kind, itemID string) (model.ContentItem, error) {
	var row model.ContentItem
	err := tx.Select("id", "like_count").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND kind = ?", itemID, kind.String()).
		Take(&row).Error
	return row, err
}

// lockComment takes a row lock on the comment. An empty itemID matches any item.
func lockComment(tx *gorm.DB, kind domain.Kind, itemID, commentID string) (model.Comment, error) {
	q := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ? AND kind = ?", commentID, kind.String())
	if itemID != "" {
		q = q.Where("item_id = ?", itemID)
	}
	var row model.Comment
	err := q.Take(&row).Error
	return row, err
}

func loadReplies(tx *gorm.DB, c *domain.Comment) error {
	var replies []model.Reply
	if err := tx.Where("comment_id = ?", c.ID).Order("created_at").Order("id").Find(&replies).Error; err != nil {
		return err
	}
	c.Replies = make([]domain.Reply, len(replies))
	for i := range replies {
		c.Replies[i] = replies[i].ToDomain()
	}
	return nil
}

func (m *engagementRepository) GetAggregate(ctx context.Context, kind domain.Kind, itemID string) (domain.Aggregate, error) {
	db := m.DB.WithContext(ctx)
	var row model.ContentItem
	err := db.Select("id", "kind", "user_id", "like_count").
		Where("id = ? AND kind = ?", itemID, kind.String()).
		Take(&row).Error
	if err != nil {
		return domain.Aggregate{}, translateError(err)
	}

	agg := row.ToDomain().Aggregate
	if err := loadEngagement(db, []*domain.Aggregate{&agg}); err != nil {
		return domain.Aggregate{}, err
	}
	return agg, nil
}

func (m *engagementRepository) FindByCommentID(ctx context.Context, kind domain.Kind, commentID string) (domain.Aggregate, error) {
	var c model.Comment
	err := m.DB.WithContext(ctx).Select("id", "item_id").
		Where("id = ? AND kind = ?", commentID, kind.String()).
		Take(&c).Error
	if err != nil {
		return domain.Aggregate{}, translateError(err)
	}
	return m.GetAggregate(ctx, kind, c.ItemID)
}

func (m *engagementRepository) AddLike(ctx context.Context, kind domain.Kind, itemID, userID string) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := lockItem(tx, kind, itemID)
		if err != nil {
			return err
		}
		if err := tx.Create(&model.ItemLike{ItemID: itemID, UserID: userID}).Error; err != nil {
			if isDuplicate(err) {
				return domain.ErrAlreadyLiked
			}
			return err
		}
		err = tx.Model(&model.ContentItem{}).
			Where("id = ?", itemID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
		if err != nil {
			return err
		}
		count = item.LikeCount + 1
		return nil
	})
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (m *engagementRepository) RemoveLike(ctx context.Context, kind domain.Kind, itemID, userID string) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := lockItem(tx, kind, itemID)
		if err != nil {
			return err
		}
		result := tx.Where("item_id = ? AND user_id = ?", itemID, userID).Delete(&model.ItemLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotLiked
		}
		err = tx.Model(&model.ContentItem{}).
			Where("id = ?", itemID).
			UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - ?, 0)", 1)).Error
		if err != nil {
			return err
		}
		count = max(item.LikeCount-1, 0)
		return nil
	})
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (m *engagementRepository) PushComment(ctx context.Context, kind domain.Kind, itemID string, c domain.Comment) error {
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockItem(tx, kind, itemID); err != nil {
			return err
		}
		if err := tx.Create(model.NewCommentFromDomain(kind, itemID, &c)).Error; err != nil {
			return err
		}
		return touchItem(tx, itemID, c.CreatedAt)
	})
	return translateError(err)
}

func (m *engagementRepository) PushReply(ctx context.Context, kind domain.Kind, itemID, commentID string, r domain.Reply) (domain.Comment, error) {
	var res domain.Comment
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockComment(tx, kind, itemID, commentID)
		if err != nil {
			return err
		}
		if err := tx.Create(model.NewReplyFromDomain(itemID, &r)).Error; err != nil {
			return err
		}
		res = row.ToDomain()
		return loadReplies(tx, &res)
	})
	if err != nil {
		return domain.Comment{}, translateError(err)
	}
	return res, nil
}

func (m *engagementRepository) SetCommentText(ctx context.Context, kind domain.Kind, commentID, text string) (string, domain.Comment, error) {
	var res domain.Comment
	var itemID string
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockComment(tx, kind, "", commentID)
		if err != nil {
			return err
		}
		err = tx.Model(&model.Comment{}).Where("id = ?", commentID).UpdateColumn("comment", text).Error
		if err != nil {
			return err
		}
		row.Text = text
		itemID = row.ItemID
		res = row.ToDomain()
		return loadReplies(tx, &res)
	})
	if err != nil {
		return "", domain.Comment{}, translateError(err)
	}
	return itemID, res, nil
}

func (m *engagementRepository) PullComment(ctx context.Context, kind domain.Kind, commentID string) (string, error) {
	var itemID string
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockComment(tx, kind, "", commentID)
		if err != nil {
			return err
		}
		if err := tx.Where("id = ?", commentID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", commentID).Delete(&model.Reply{}).Error; err != nil {
			return err
		}
		itemID = row.ItemID
		return nil
	})
	if err != nil {
		return "", translateError(err)
	}
	return itemID, nil
}

func touchItem(tx *gorm.DB, itemID string, at time.Time) error {
	return tx.Model(&model.ContentItem{}).Where("id = ?", itemID).UpdateColumn("updated_at", at).Error
}
