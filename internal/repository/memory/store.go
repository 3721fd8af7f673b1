// Package memory keeps content and engagement state in process memory.
// It backs local development (STORAGE_DRIVER=memory) and the usecase tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/repository"
)

// Store serializes every operation through one mutex, so each mutation is
// atomic with respect to all others.
type Store struct {
	mu    sync.Mutex
	items map[domain.Kind]map[string]*domain.ContentItem
}

var (
	_ domain.ContentRepository    = (*Store)(nil)
	_ domain.EngagementRepository = (*Store)(nil)
)

func New() *Store {
	return &Store{
		items: map[domain.Kind]map[string]*domain.ContentItem{
			domain.KindBlog:  {},
			domain.KindVideo: {},
		},
	}
}

func cloneItem(it *domain.ContentItem) domain.ContentItem {
	c := *it
	c.Aggregate = it.Aggregate.Clone()
	c.SKU = slices.Clone(it.SKU)
	c.Tags = slices.Clone(it.Tags)
	c.TagsAr = slices.Clone(it.TagsAr)
	c.BlogItems = slices.Clone(it.BlogItems)
	if it.Image != nil {
		img := *it.Image
		c.Image = &img
	}
	return c
}

func (s *Store) sortedLocked(kind domain.Kind) []*domain.ContentItem {
	all := make([]*domain.ContentItem, 0, len(s.items[kind]))
	for _, it := range s.items[kind] {
		all = append(all, it)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all
}

func (s *Store) Fetch(ctx context.Context, kind domain.Kind, cursor string, num int64) ([]domain.ContentItem, error) {
	var afterTime time.Time
	var afterID string
	if cursor != "" {
		t, id, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.InvalidField("cursor")
		}
		afterTime, afterID = t, id
	}
	repository.PageVerify(&num)

	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.ContentItem, 0, num)
	for _, it := range s.sortedLocked(kind) {
		if !repository.AfterCursor(it.CreatedAt, it.ID, afterTime, afterID) {
			continue
		}
		res = append(res, cloneItem(it))
		if int64(len(res)) == num {
			break
		}
	}
	return res, nil
}

func (s *Store) GetByID(ctx context.Context, kind domain.Kind, id string) (domain.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[kind][id]
	if !ok {
		return domain.ContentItem{}, domain.ErrNotFound
	}
	return cloneItem(it), nil
}

func (s *Store) FetchByCategory(ctx context.Context, kind domain.Kind, category string, limit int64) ([]domain.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.ContentItem, 0, limit)
	for _, it := range s.sortedLocked(kind) {
		if it.Category != category {
			continue
		}
		res = append(res, cloneItem(it))
		if int64(len(res)) == limit {
			break
		}
	}
	return res, nil
}

func (s *Store) Store(ctx context.Context, item *domain.ContentItem) error {
	if !item.Kind.Valid() {
		return domain.InvalidField("kind")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.Kind][item.ID]; ok {
		return domain.ErrConflict
	}
	c := cloneItem(item)
	s.items[item.Kind][item.ID] = &c
	return nil
}

func (s *Store) Update(ctx context.Context, item *domain.ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.items[item.Kind][item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c := cloneItem(item)
	// engagement state is owned by the engagement commands
	c.Aggregate = old.Aggregate
	c.CreatedAt = old.CreatedAt
	s.items[item.Kind][item.ID] = &c
	return nil
}

func (s *Store) Delete(ctx context.Context, kind domain.Kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[kind][id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.items[kind], id)
	return nil
}

func (s *Store) FetchIDs(ctx context.Context, kind domain.Kind, cursor string, limit int64) ([]string, error) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.items[kind]))
	for id := range s.items[kind] {
		if id > cursor {
			ids = append(ids, id)
		}
	}
	s.mu.Unlock()

	slices.Sort(ids)
	if int64(len(ids)) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (s *Store) GetAggregate(ctx context.Context, kind domain.Kind, itemID string) (domain.Aggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[kind][itemID]
	if !ok {
		return domain.Aggregate{}, domain.ErrNotFound
	}
	return it.Aggregate.Clone(), nil
}

// findCommentLocked returns the item owning commentID and the comment's index
func (s *Store) findCommentLocked(kind domain.Kind, commentID string) (*domain.ContentItem, int) {
	for _, it := range s.items[kind] {
		for i := range it.Comments {
			if it.Comments[i].ID == commentID {
				return it, i
			}
		}
	}
	return nil, -1
}

func (s *Store) FindByCommentID(ctx context.Context, kind domain.Kind, commentID string) (domain.Aggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, _ := s.findCommentLocked(kind, commentID)
	if it == nil {
		return domain.Aggregate{}, domain.ErrNotFound
	}
	return it.Aggregate.Clone(), nil
}

func (s *Store) AddLike(ctx context.Context, kind domain.Kind, itemID, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[kind][itemID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if it.LikedByUser(userID) {
		return 0, domain.ErrAlreadyLiked
	}
	it.LikedBy = append(it.LikedBy, userID)
	it.LikeCount++
	return it.LikeCount, nil
}

func (s *Store) RemoveLike(ctx context.Context, kind domain.Kind, itemID, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[kind][itemID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	idx := slices.Index(it.LikedBy, userID)
	if idx < 0 {
		return 0, domain.ErrNotLiked
	}
	it.LikedBy = slices.Delete(it.LikedBy, idx, idx+1)
	it.LikeCount = max(it.LikeCount-1, 0)
	return it.LikeCount, nil
}

func (s *Store) PushComment(ctx context.Context, kind domain.Kind, itemID string, c domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[kind][itemID]
	if !ok {
		return domain.ErrNotFound
	}
	it.Comments = append(it.Comments, c.Clone())
	return nil
}

func (s *Store) PushReply(ctx context.Context, kind domain.Kind, itemID, commentID string, r domain.Reply) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[kind][itemID]
	if !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	for i := range it.Comments {
		if it.Comments[i].ID == commentID {
			it.Comments[i].Replies = append(it.Comments[i].Replies, r)
			return it.Comments[i].Clone(), nil
		}
	}
	return domain.Comment{}, domain.ErrNotFound
}

func (s *Store) SetCommentText(ctx context.Context, kind domain.Kind, commentID, text string) (string, domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, idx := s.findCommentLocked(kind, commentID)
	if it == nil {
		return "", domain.Comment{}, domain.ErrNotFound
	}
	it.Comments[idx].Text = text
	return it.ID, it.Comments[idx].Clone(), nil
}

func (s *Store) PullComment(ctx context.Context, kind domain.Kind, commentID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, idx := s.findCommentLocked(kind, commentID)
	if it == nil {
		return "", domain.ErrNotFound
	}
	it.Comments = slices.Delete(it.Comments, idx, idx+1)
	return it.ID, nil
}
