package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/identity"
)

type fakeStore struct {
	buckets map[string]bool
	objects map[string]string
	putErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{buckets: map[string]bool{}, objects: map[string]string{}}
}

func (f *fakeStore) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return f.buckets[bucketName], nil
}

func (f *fakeStore) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	f.buckets[bucketName] = true
	return nil
}

func (f *fakeStore) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	b, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[bucketName+"/"+objectName] = string(b)
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(b))}, nil
}

func TestNewStorage_CreatesBucket(t *testing.T) {
	store := newFakeStore()
	s, err := NewStorage(context.Background(), store, Config{Endpoint: "localhost:9000", Bucket: "media"}, identity.New())
	require.NoError(t, err)
	assert.True(t, store.buckets["media"])
	assert.Equal(t, "http://localhost:9000/media", s.publicURL)
}

func TestUpload(t *testing.T) {
	store := newFakeStore()
	s, err := NewStorage(context.Background(), store, Config{Bucket: "media", PublicURL: "https://cdn.example.com/media/"}, identity.New())
	require.NoError(t, err)

	fd, err := s.Upload(context.Background(), domain.Upload{
		FileName:    "Cover.PNG",
		ContentType: "image/png",
		Body:        strings.NewReader(strings.Repeat("x", 12500)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Cover.PNG", fd.FileName)
	assert.Equal(t, "image/png", fd.FileType)
	assert.Equal(t, "12.5 KB", fd.FileSize)
	assert.True(t, strings.HasPrefix(fd.FilePath, "https://cdn.example.com/media/portfolio/"), fd.FilePath)
	assert.True(t, strings.HasSuffix(fd.FilePath, ".png"), fd.FilePath)
	assert.Len(t, store.objects, 1)
}

func TestUpload_Errors(t *testing.T) {
	store := newFakeStore()
	s, err := NewStorage(context.Background(), store, Config{Bucket: "media"}, identity.New())
	require.NoError(t, err)

	_, err = s.Upload(context.Background(), domain.Upload{FileName: "a.png"})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	store.putErr = errors.New("access denied")
	_, err = s.Upload(context.Background(), domain.Upload{FileName: "a.png", Size: 1, Body: strings.NewReader("x")})
	assert.ErrorContains(t, err, "access denied")
}

func TestFormatFileSize(t *testing.T) {
	tests := map[int64]string{
		0:          "0 Bytes",
		512:        "512 Bytes",
		12500:      "12.5 KB",
		1234567:    "1.23 MB",
		3000000000: "3 GB",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatFileSize(in, 2), "bytes %d", in)
	}
}
