package repository

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/portfolio-cms/domain"
)

// ItemCacheTTL is the logical lifetime of a cached item snapshot
const ItemCacheTTL = 10 * time.Minute

const fillStripes = 64

// fillGuard orders cache fills against invalidations. A loader records the
// stripe generation before reading the database and only writes its snapshot
// back if no invalidation of that stripe happened in between.
type fillGuard struct {
	stripes [fillStripes]struct {
		mu  sync.Mutex
		gen uint64
	}
}

func (g *fillGuard) stripe(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % fillStripes)
}

func (g *fillGuard) begin(key string) uint64 {
	s := &g.stripes[g.stripe(key)]
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// fill runs set unless the stripe was invalidated since gen
func (g *fillGuard) fill(key string, gen uint64, set func()) bool {
	s := &g.stripes[g.stripe(key)]
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	set()
	return true
}

func (g *fillGuard) invalidate(key string, drop func()) {
	s := &g.stripes[g.stripe(key)]
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	drop()
}

// ItemInvalidator drops the cached snapshot of an item after a write
type ItemInvalidator interface {
	Invalidate(ctx context.Context, kind domain.Kind, id string)
}

// contentRepository coordinates the item cache and the database
type contentRepository struct {
	db            domain.ContentRepository
	cache         domain.ContentCache
	guard         fillGuard
	rebuildGroup  singleflight.Group
	mu            sync.Mutex
	rebuildingMap map[string]bool // items whose cache is being rebuilt
}

var (
	_ domain.ContentRepository = (*contentRepository)(nil)
	_ ItemInvalidator          = (*contentRepository)(nil)
)

// NewContentRepository wraps db with a read-through item cache
func NewContentRepository(db domain.ContentRepository, cache domain.ContentCache) *contentRepository {
	return &contentRepository{
		db:            db,
		cache:         cache,
		rebuildingMap: make(map[string]bool),
	}
}

func cacheKey(kind domain.Kind, id string) string {
	return kind.String() + ":" + id
}

func (r *contentRepository) Fetch(ctx context.Context, kind domain.Kind, cursor string, num int64) ([]domain.ContentItem, error) {
	return r.db.Fetch(ctx, kind, cursor, num)
}

// GetByID serves from cache with logical expiry; an expired hit is returned
// as is while the entry is rebuilt in the background.
func (r *contentRepository) GetByID(ctx context.Context, kind domain.Kind, id string) (domain.ContentItem, error) {
	item, expired, err := r.cache.GetItem(ctx, kind, id)
	if err == nil {
		if expired {
			go r.rebuildItemCache(context.Background(), kind, id)
		}
		return item, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("content cache read failed for %s %s: %v", kind, id, err)
	}

	key := cacheKey(kind, id)
	result, err, _ := r.rebuildGroup.Do(key, func() (any, error) {
		gen := r.guard.begin(key)
		it, err := r.db.GetByID(ctx, kind, id)
		if err != nil {
			return nil, err
		}
		r.storeSnapshot(context.Background(), key, gen, &it)
		return it, nil
	})
	if err != nil {
		return domain.ContentItem{}, err
	}
	return result.(domain.ContentItem), nil
}

func (r *contentRepository) FetchByCategory(ctx context.Context, kind domain.Kind, category string, limit int64) ([]domain.ContentItem, error) {
	return r.db.FetchByCategory(ctx, kind, category, limit)
}

func (r *contentRepository) Store(ctx context.Context, item *domain.ContentItem) error {
	return r.db.Store(ctx, item)
}

func (r *contentRepository) Update(ctx context.Context, item *domain.ContentItem) error {
	if err := r.db.Update(ctx, item); err != nil {
		return err
	}
	r.Invalidate(ctx, item.Kind, item.ID)
	return nil
}

func (r *contentRepository) Delete(ctx context.Context, kind domain.Kind, id string) error {
	if err := r.db.Delete(ctx, kind, id); err != nil {
		return err
	}
	r.Invalidate(ctx, kind, id)
	return nil
}

func (r *contentRepository) FetchIDs(ctx context.Context, kind domain.Kind, cursor string, limit int64) ([]string, error) {
	return r.db.FetchIDs(ctx, kind, cursor, limit)
}

// Invalidate drops the cached snapshot and discards any fill that read the
// database before this call.
func (r *contentRepository) Invalidate(ctx context.Context, kind domain.Kind, id string) {
	r.guard.invalidate(cacheKey(kind, id), func() {
		if err := r.cache.DeleteItem(ctx, kind, id); err != nil {
			logrus.Errorf("failed to invalidate cache for %s %s: %v", kind, id, err)
		}
	})
}

func (r *contentRepository) storeSnapshot(ctx context.Context, key string, gen uint64, it *domain.ContentItem) {
	stored := r.guard.fill(key, gen, func() {
		if err := r.cache.SetItem(ctx, it, ItemCacheTTL); err != nil {
			logrus.Warnf("failed to cache %s %s: %v", it.Kind, it.ID, err)
		}
	})
	if !stored {
		logrus.Debugf("skipped stale cache fill for %s", key)
	}
}

// rebuildItemCache reloads one item into the cache
func (r *contentRepository) rebuildItemCache(ctx context.Context, kind domain.Kind, id string) {
	key := cacheKey(kind, id)
	r.mu.Lock()
	if r.rebuildingMap[key] {
		r.mu.Unlock()
		return
	}
	r.rebuildingMap[key] = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.rebuildingMap, key)
		r.mu.Unlock()
	}()

	_, err, _ := r.rebuildGroup.Do("rebuild:"+key, func() (any, error) {
		gen := r.guard.begin(key)
		item, err := r.db.GetByID(ctx, kind, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				_ = r.cache.DeleteItem(ctx, kind, id)
			}
			return nil, err
		}
		r.storeSnapshot(ctx, key, gen, &item)
		return nil, nil
	})

	if err != nil {
		logrus.Errorf("rebuildItemCache failed for %s %s: %v", kind, id, err)
	}
}

// engagementRepository keeps the item cache coherent with engagement
// mutations and rejects ids the bloom filter has never seen.
type engagementRepository struct {
	db    domain.EngagementRepository
	items ItemInvalidator
	bloom domain.BloomRepository
}

var _ domain.EngagementRepository = (*engagementRepository)(nil)

// NewEngagementRepository wraps db with bloom filtering. Successful writes
// invalidate through items, normally the repository from NewContentRepository.
func NewEngagementRepository(db domain.EngagementRepository, items ItemInvalidator, bloom domain.BloomRepository) *engagementRepository {
	return &engagementRepository{
		db:    db,
		items: items,
		bloom: bloom,
	}
}

// mayExist fails open: a bloom error never blocks a real write
func (r *engagementRepository) mayExist(ctx context.Context, kind domain.Kind, itemID string) bool {
	ok, err := r.bloom.Exists(ctx, kind, itemID)
	if err != nil {
		logrus.Warnf("bloom filter check failed for %s %s: %v", kind, itemID, err)
		return true
	}
	return ok
}

func (r *engagementRepository) invalidate(ctx context.Context, kind domain.Kind, itemID string) {
	r.items.Invalidate(ctx, kind, itemID)
}

func (r *engagementRepository) GetAggregate(ctx context.Context, kind domain.Kind, itemID string) (domain.Aggregate, error) {
	if !r.mayExist(ctx, kind, itemID) {
		return domain.Aggregate{}, domain.ErrNotFound
	}
	return r.db.GetAggregate(ctx, kind, itemID)
}

func (r *engagementRepository) FindByCommentID(ctx context.Context, kind domain.Kind, commentID string) (domain.Aggregate, error) {
	return r.db.FindByCommentID(ctx, kind, commentID)
}

func (r *engagementRepository) AddLike(ctx context.Context, kind domain.Kind, itemID, userID string) (int64, error) {
	if !r.mayExist(ctx, kind, itemID) {
		return 0, domain.ErrNotFound
	}
	count, err := r.db.AddLike(ctx, kind, itemID, userID)
	if err != nil {
		return 0, err
	}
	r.invalidate(ctx, kind, itemID)
	return count, nil
}

func (r *engagementRepository) RemoveLike(ctx context.Context, kind domain.Kind, itemID, userID string) (int64, error) {
	if !r.mayExist(ctx, kind, itemID) {
		return 0, domain.ErrNotFound
	}
	count, err := r.db.RemoveLike(ctx, kind, itemID, userID)
	if err != nil {
		return 0, err
	}
	r.invalidate(ctx, kind, itemID)
	return count, nil
}

func (r *engagementRepository) PushComment(ctx context.Context, kind domain.Kind, itemID string, c domain.Comment) error {
	if !r.mayExist(ctx, kind, itemID) {
		return domain.ErrNotFound
	}
	if err := r.db.PushComment(ctx, kind, itemID, c); err != nil {
		return err
	}
	r.invalidate(ctx, kind, itemID)
	return nil
}

func (r *engagementRepository) PushReply(ctx context.Context, kind domain.Kind, itemID, commentID string, reply domain.Reply) (domain.Comment, error) {
	if !r.mayExist(ctx, kind, itemID) {
		return domain.Comment{}, domain.ErrNotFound
	}
	c, err := r.db.PushReply(ctx, kind, itemID, commentID, reply)
	if err != nil {
		return domain.Comment{}, err
	}
	r.invalidate(ctx, kind, itemID)
	return c, nil
}

func (r *engagementRepository) SetCommentText(ctx context.Context, kind domain.Kind, commentID, text string) (string, domain.Comment, error) {
	itemID, c, err := r.db.SetCommentText(ctx, kind, commentID, text)
	if err != nil {
		return "", domain.Comment{}, err
	}
	r.invalidate(ctx, kind, itemID)
	return itemID, c, nil
}

func (r *engagementRepository) PullComment(ctx context.Context, kind domain.Kind, commentID string) (string, error) {
	itemID, err := r.db.PullComment(ctx, kind, commentID)
	if err != nil {
		return "", err
	}
	r.invalidate(ctx, kind, itemID)
	return itemID, nil
}
