package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout       = 30
	defaultAddress       = ":8081"
	defaultStorageDriver = "mongo"
	defaultMongoDBName   = "portfolio"
	defaultCacheDB       = 0
	defaultBloomBitSize  = 10000000
	defaultMinioBucket   = "portfolio"
	defaultSMTPPort      = "587"
	dbMaxRetry           = 10
	dbRetryIntervalSec   = 2
)

type Config struct {
	Address        string
	ContextTimeout time.Duration
	AllowedOrigins []string
	StorageDriver  string

	MongoURI    string
	MongoDBName string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	CacheHost    string
	CachePort    string
	CachePass    string
	CacheDB      int
	BloomBitSize uint64

	JWTSecret string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioPublicURL string

	SMTPHost         string
	SMTPPort         string
	EmailUser        string
	EmailPass        string
	ContactRecipient string
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %d", key, fallback)
		return fallback
	}
	return v
}

func splitOrigins(s string) []string {
	var res []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

// LoadConfig reads the environment, falling back to defaults for unset values
func LoadConfig() Config {
	cfg := Config{
		Address:        getEnv("SERVER_ADDRESS", ""),
		ContextTimeout: time.Duration(getIntEnv("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", defaultStorageDriver)),

		MongoURI:    getEnv("MONGO_URI", os.Getenv("DATABASE")),
		MongoDBName: getEnv("MONGO_DB_NAME", defaultMongoDBName),

		DBHost: os.Getenv("DATABASE_HOST"),
		DBPort: getEnv("DATABASE_PORT", "3306"),
		DBUser: os.Getenv("DATABASE_USER"),
		DBPass: os.Getenv("DATABASE_PASS"),
		DBName: os.Getenv("DATABASE_NAME"),

		CacheHost: os.Getenv("CACHE_HOST"),
		CachePort: getEnv("CACHE_PORT", "6379"),
		CachePass: os.Getenv("CACHE_PASS"),
		CacheDB:   getIntEnv("CACHE_DB", defaultCacheDB),

		JWTSecret: os.Getenv("JWT_SECRET"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		MinioBucket:    getEnv("MINIO_BUCKET", defaultMinioBucket),
		MinioPublicURL: os.Getenv("MINIO_PUBLIC_URL"),

		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnv("SMTP_PORT", defaultSMTPPort),
		EmailUser:        os.Getenv("EMAIL_USER"),
		EmailPass:        os.Getenv("EMAIL_PASS"),
		ContactRecipient: os.Getenv("CONTACT_RECIPIENT"),
	}

	if cfg.Address == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Address = ":" + port
		} else {
			cfg.Address = defaultAddress
		}
	}

	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil || bloomBitSize == 0 {
		bloomBitSize = defaultBloomBitSize
	}
	cfg.BloomBitSize = bloomBitSize
	return cfg
}
