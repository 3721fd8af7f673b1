// Package media stores uploaded images in an S3 compatible bucket through minio.
package media

import (
	"context"
	"fmt"
	"io"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Guyuepp/portfolio-cms/domain"
)

const (
	// Folder is the object prefix every upload is stored under
	Folder = "portfolio"

	defaultRegion = "us-east-1"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL prefixes object keys in returned file paths,
	// e.g. https://cdn.example.com/bucket
	PublicURL string
}

// objectStore is the part of *minio.Client the storage needs
type objectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type Storage struct {
	client    objectStore
	bucket    string
	publicURL string
	ids       domain.IDGenerator
}

var _ domain.MediaStorage = (*Storage)(nil)

// NewMinioClient opens a client for cfg.Endpoint
func NewMinioClient(cfg Config) (*minio.Client, error) {
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}

// NewStorage checks that the bucket exists and creates it when it doesn't
func NewStorage(ctx context.Context, client objectStore, cfg Config, ids domain.IDGenerator) (*Storage, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: defaultRegion}); err != nil {
			return nil, fmt.Errorf("create bucket error: %w", err)
		}
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return &Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		ids:       ids,
	}, nil
}

func (s *Storage) Upload(ctx context.Context, u domain.Upload) (domain.FileData, error) {
	if u.Body == nil {
		return domain.FileData{}, domain.InvalidField("file")
	}
	name, err := s.ids.NewID()
	if err != nil {
		return domain.FileData{}, err
	}
	objectName := path.Join(Folder, name+strings.ToLower(path.Ext(u.FileName)))

	size := u.Size
	if size <= 0 {
		size = -1
	}
	info, err := s.client.PutObject(ctx, s.bucket, objectName, u.Body, size, minio.PutObjectOptions{ContentType: u.ContentType})
	if err != nil {
		return domain.FileData{}, fmt.Errorf("upload %s: %w", u.FileName, err)
	}
	if size < 0 {
		size = info.Size
	}

	return domain.FileData{
		FileName: u.FileName,
		FilePath: s.publicURL + "/" + objectName,
		FileType: u.ContentType,
		FileSize: FormatFileSize(size, 2),
	}, nil
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// FormatFileSize renders bytes in decimal units, e.g. 12500 -> "12.5 KB"
func FormatFileSize(bytes int64, decimals int) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	v, idx := float64(bytes), 0
	for v >= 1000 && idx < len(sizeUnits)-1 {
		v /= 1000
		idx++
	}
	p := math.Pow(10, float64(decimals))
	v = math.Round(v*p) / p
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[idx]
}
