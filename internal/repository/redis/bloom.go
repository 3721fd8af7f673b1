package redis

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/portfolio-cms/domain"
)

const (
	KeyContentBloom = "bloom:%s:ids"

	// bloomHashes is the number of bits set per id
	bloomHashes = 3
)

type redisBloomRepo struct {
	client       *redis.Client
	BloomBitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
	}
}

func bloomKey(kind domain.Kind) string {
	return fmt.Sprintf(KeyContentBloom, kind)
}

func (r *redisBloomRepo) Add(ctx context.Context, kind domain.Kind, id string) error {
	key := bloomKey(kind)
	pipe := r.client.Pipeline()
	for _, offset := range r.getOffset(id) {
		pipe.SetBit(ctx, key, int64(offset), 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Exists reports whether id may be present. A missing filter key means the
// filter was lost or never built, so every id is treated as present.
func (r *redisBloomRepo) Exists(ctx context.Context, kind domain.Kind, id string) (bool, error) {
	key := bloomKey(kind)
	pipe := r.client.Pipeline()
	present := pipe.Exists(ctx, key)
	for _, offset := range r.getOffset(id) {
		pipe.GetBit(ctx, key, int64(offset))
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	n, err := present.Result()
	if err != nil {
		return false, err
	}
	if n == 0 {
		logrus.Warnf("bloom filter %s is missing, allowing %s", key, id)
		return true, nil
	}

	for _, cmd := range cmds[1:] {
		val, err := cmd.(*redis.IntCmd).Result()
		if err != nil {
			return false, err
		}
		if val == 0 {
			return false, nil
		}
	}

	return true, nil
}

func (r *redisBloomRepo) getOffset(id string) []uint64 {
	data := []byte(id)
	offsets := make([]uint64, bloomHashes)

	// Hash 1: CRC32
	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	// Hash 2: FNV64
	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	// Hash 3: linear mix of the first two
	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, kind domain.Kind, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	key := bloomKey(kind)
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.getOffset(id) {
			pipe.SetBit(ctx, key, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
