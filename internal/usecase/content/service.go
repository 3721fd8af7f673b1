package content

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/repository"
)

const (
	// RelatedLimit caps how many items a related query looks at
	RelatedLimit = 5

	bloomBatchSize = 1000
)

type Service struct {
	repo  domain.ContentRepository
	media domain.MediaStorage
	bloom domain.BloomRepository
	ids   domain.IDGenerator
	now   func() time.Time
}

var _ domain.ContentUsecase = (*Service)(nil)

// NewService will create a new content service object.
// bloom may be nil when no cache is configured.
func NewService(repo domain.ContentRepository, media domain.MediaStorage, bloom domain.BloomRepository, ids domain.IDGenerator) *Service {
	return &Service{
		repo:  repo,
		media: media,
		bloom: bloom,
		ids:   ids,
		now:   time.Now,
	}
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *Service) Fetch(ctx context.Context, kind domain.Kind, cursor string, num int64) ([]domain.ContentItem, string, error) {
	res, err := s.repo.Fetch(ctx, kind, cursor, num)
	if err != nil {
		return nil, "", err
	}
	nextCursor := ""
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt, res[len(res)-1].ID)
	}
	return res, nextCursor, nil
}

func (s *Service) GetByID(ctx context.Context, kind domain.Kind, id string) (domain.ContentItem, error) {
	if !s.ids.Valid(id) {
		return domain.ContentItem{}, domain.InvalidField("id")
	}
	if s.bloom != nil {
		ok, err := s.bloom.Exists(ctx, kind, id)
		if err != nil {
			logrus.Warnf("bloom filter check failed for %s %s: %v", kind, id, err)
		} else if !ok {
			return domain.ContentItem{}, domain.ErrNotFound
		}
	}
	return s.repo.GetByID(ctx, kind, id)
}

func (s *Service) Related(ctx context.Context, kind domain.Kind, category, id string) ([]domain.ContentItem, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, domain.InvalidField("category")
	}
	ref, err := s.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FetchByCategory(ctx, kind, category, RelatedLimit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.ContentItem, 0, len(items))
	for _, it := range items {
		if it.Name != ref.Name {
			res = append(res, it)
		}
	}
	return res, nil
}

func validateItem(item *domain.ContentItem) error {
	if !item.Kind.Valid() {
		return domain.InvalidField("kind")
	}
	if strings.TrimSpace(item.Name) == "" {
		return domain.InvalidField("name")
	}
	if item.Kind == domain.KindVideo {
		switch {
		case strings.TrimSpace(item.Category) == "":
			return domain.InvalidField("category")
		case strings.TrimSpace(item.Description) == "":
			return domain.InvalidField("description")
		case strings.TrimSpace(item.VideoURL) == "":
			return domain.InvalidField("videoUrl")
		case len(item.Tags) == 0:
			return domain.InvalidField("tags")
		}
	}
	return nil
}

// uploadMedia pushes all files to media storage concurrently.
// BlogItemImages[i] is attached to BlogItems[i]; extra images are ignored.
func (s *Service) uploadMedia(ctx context.Context, item *domain.ContentItem, media domain.ContentMedia) error {
	if media.Image == nil && len(media.BlogItemImages) == 0 {
		return nil
	}
	if s.media == nil {
		return domain.ErrInternalServerError
	}

	g, ctx := errgroup.WithContext(ctx)
	var image *domain.FileData
	if media.Image != nil {
		g.Go(func() error {
			fd, err := s.media.Upload(ctx, *media.Image)
			if err != nil {
				return err
			}
			image = &fd
			return nil
		})
	}

	blogImages := make([]*domain.FileData, len(item.BlogItems))
	for i, u := range media.BlogItemImages {
		if i >= len(item.BlogItems) {
			logrus.Warnf("dropping blog item image %q with no matching blog item", u.FileName)
			continue
		}
		g.Go(func() error {
			fd, err := s.media.Upload(ctx, u)
			if err != nil {
				return err
			}
			blogImages[i] = &fd
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if image != nil {
		item.Image = image
	}
	for i, fd := range blogImages {
		if fd != nil {
			item.BlogItems[i].Image = fd
		}
	}
	return nil
}

func (s *Service) Store(ctx context.Context, item *domain.ContentItem, media domain.ContentMedia) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if strings.TrimSpace(item.Photo) == "" {
		item.Photo = domain.DefaultAuthorPhoto
	}

	id, err := s.ids.NewID()
	if err != nil {
		return err
	}
	item.Aggregate = domain.Aggregate{
		ID:       id,
		Kind:     item.Kind,
		OwnerID:  item.OwnerID,
		LikedBy:  []string{},
		Comments: []domain.Comment{},
	}

	if err := s.uploadMedia(ctx, item, media); err != nil {
		logrus.Errorf("failed to upload media for new %s: %v", item.Kind, err)
		return err
	}

	now := s.timestamp()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.repo.Store(ctx, item); err != nil {
		return err
	}

	if s.bloom != nil {
		if err := s.bloom.Add(ctx, item.Kind, item.ID); err != nil {
			logrus.Errorf("failed to add %s %s to bloom filter: %v", item.Kind, item.ID, err)
		}
	}
	return nil
}

// owned loads the item and checks that actingUserID owns it
func (s *Service) owned(ctx context.Context, kind domain.Kind, id, actingUserID string) (domain.ContentItem, error) {
	existing, err := s.GetByID(ctx, kind, id)
	if err != nil {
		return domain.ContentItem{}, err
	}
	if existing.OwnerID != actingUserID {
		return domain.ContentItem{}, domain.ErrForbidden
	}
	return existing, nil
}

func (s *Service) Update(ctx context.Context, item *domain.ContentItem, media domain.ContentMedia, actingUserID string) error {
	existing, err := s.owned(ctx, item.Kind, item.ID, actingUserID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(item.Name) == "" {
		item.Name = existing.Name
	}
	if err := validateItem(item); err != nil {
		return err
	}

	if item.Image == nil {
		item.Image = existing.Image
	}
	if len(item.BlogItems) == 0 {
		item.BlogItems = existing.BlogItems
	} else {
		for i := range item.BlogItems {
			if item.BlogItems[i].Image == nil && i < len(existing.BlogItems) {
				item.BlogItems[i].Image = existing.BlogItems[i].Image
			}
		}
	}
	if strings.TrimSpace(item.Photo) == "" {
		item.Photo = existing.Photo
	}

	if err := s.uploadMedia(ctx, item, media); err != nil {
		logrus.Errorf("failed to upload media for %s %s: %v", item.Kind, item.ID, err)
		return err
	}

	item.Aggregate = existing.Aggregate
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = s.timestamp()
	return s.repo.Update(ctx, item)
}

func (s *Service) Delete(ctx context.Context, kind domain.Kind, id, actingUserID string) error {
	if _, err := s.owned(ctx, kind, id, actingUserID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, kind, id)
}

// InitBloomFilter loads every stored id into the bloom filter
func (s *Service) InitBloomFilter(ctx context.Context) error {
	if s.bloom == nil {
		return nil
	}
	for _, kind := range []domain.Kind{domain.KindBlog, domain.KindVideo} {
		cursor := ""
		total := 0
		for {
			ids, err := s.repo.FetchIDs(ctx, kind, cursor, bloomBatchSize)
			if err != nil {
				return err
			}
			if err := s.bloom.BulkAdd(ctx, kind, ids); err != nil {
				return err
			}
			total += len(ids)
			if len(ids) < bloomBatchSize {
				break
			}
			cursor = ids[len(ids)-1]
		}
		logrus.Infof("bloom filter loaded %d %s ids", total, kind)
	}
	return nil
}
