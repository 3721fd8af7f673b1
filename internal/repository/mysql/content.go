package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/repository"
	"github.com/Guyuepp/portfolio-cms/internal/repository/mysql/model"
)

type contentRepository struct {
	DB *gorm.DB
}

var _ domain.ContentRepository = (*contentRepository)(nil)

// NewContentRepository will create the gorm backed content store
func NewContentRepository(db *gorm.DB) *contentRepository {
	return &contentRepository{db}
}

func toDomainItems(db *gorm.DB, rows []model.ContentItem) ([]domain.ContentItem, error) {
	res := make([]domain.ContentItem, len(rows))
	aggs := make([]*domain.Aggregate, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
		aggs[i] = &res[i].Aggregate
	}
	if err := loadEngagement(db, aggs); err != nil {
		return nil, err
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
	db := m.DB.WithContext(ctx)
	var rows []model.ContentItem
	err := db.Where("kind = ? AND (created_at > ? OR (created_at = ? AND id > ?))",
		kind.String(), afterTime, afterTime, afterID).
		Order("created_at").
		Order("id").
		Limit(int(num)).
		Find(&rows).
		Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainItems(db, rows)
}

func (m *contentRepository) GetByID(ctx context.Context, kind domain.Kind, id string) (domain.ContentItem, error) {
	db := m.DB.WithContext(ctx)
	var row model.ContentItem
	if err := db.Where("id = ? AND kind = ?", id, kind.String()).Take(&row).Error; err != nil {
		return domain.ContentItem{}, translateError(err)
	}
	res, err := toDomainItems(db, []model.ContentItem{row})
	if err != nil {
		return domain.ContentItem{}, err
	}
	return res[0], nil
}

func (m *contentRepository) FetchByCategory(ctx context.Context, kind domain.Kind, category string, limit int64) ([]domain.ContentItem, error) {
	db := m.DB.WithContext(ctx)
	var rows []model.ContentItem
	err := db.Where("kind = ? AND category = ?", kind.String(), category).
		Order("created_at").
		Limit(int(limit)).
		Find(&rows).
		Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDomainItems(db, rows)
}

func (m *contentRepository) Store(ctx context.Context, item *domain.ContentItem) error {
	if !item.Kind.Valid() {
		return domain.InvalidField("kind")
	}
	row := model.NewContentItemFromDomain(item)
	if err := m.DB.WithContext(ctx).Create(row).Error; err != nil {
		if isDuplicate(err) {
			return domain.ErrConflict
		}
		return translateError(err)
	}
	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (m *contentRepository) Update(ctx context.Context, item *domain.ContentItem) error {
	row := model.NewContentItemFromDomain(item)
	db := m.DB.WithContext(ctx)
	result := db.Model(&model.ContentItem{ID: item.ID}).
		Where("kind = ?", item.Kind.String()).
		Select(model.UpdatableColumns).
		Updates(row)
	if result.Error != nil {
		return translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		// MySQL reports 0 rows for an update that changed nothing
		var n int64
		if err := db.Model(&model.ContentItem{}).Where("id = ? AND kind = ?", item.ID, item.Kind.String()).Count(&n).Error; err != nil {
			return translateError(err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}
	}
	return nil
}

// Delete removes the item row and every engagement row hanging off it
func (m *contentRepository) Delete(ctx context.Context, kind domain.Kind, id string) error {
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND kind = ?", id, kind.String()).Delete(&model.ContentItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		if err := tx.Where("item_id = ?", id).Delete(&model.ItemLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&model.Reply{}).Error; err != nil {
			return err
		}
		return tx.Where("item_id = ?", id).Delete(&model.Comment{}).Error
	})
	return translateError(err)
}

func (m *contentRepository) FetchIDs(ctx context.Context, kind domain.Kind, cursor string, limit int64) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.ContentItem{}).
		Where("kind = ? AND id > ?", kind.String(), cursor).
		Order("id").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	return ids, translateError(err)
}
