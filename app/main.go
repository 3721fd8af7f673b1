package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/identity"
	"github.com/Guyuepp/portfolio-cms/internal/mail"
	"github.com/Guyuepp/portfolio-cms/internal/media"
	"github.com/Guyuepp/portfolio-cms/internal/repository"
	"github.com/Guyuepp/portfolio-cms/internal/repository/memory"
	mongoRepo "github.com/Guyuepp/portfolio-cms/internal/repository/mongo"
	mysqlRepo "github.com/Guyuepp/portfolio-cms/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/portfolio-cms/internal/repository/redis"
	"github.com/Guyuepp/portfolio-cms/internal/rest"
	"github.com/Guyuepp/portfolio-cms/internal/rest/middleware"
	"github.com/Guyuepp/portfolio-cms/internal/usecase/contact"
	"github.com/Guyuepp/portfolio-cms/internal/usecase/content"
	"github.com/Guyuepp/portfolio-cms/internal/usecase/engagement"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading configuration from the environment")
	}
}

// stores bundles the repositories of the selected driver
type stores struct {
	content    domain.ContentRepository
	engagement domain.EngagementRepository
	close      func()
}

func openMySQL(cfg Config) (*gorm.DB, error) {
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

func openStores(ctx context.Context, cfg Config) (stores, error) {
	switch cfg.StorageDriver {
	case "memory":
		s := memory.New()
		logrus.Warn("using the in-memory store, data is lost on restart")
		return stores{content: s, engagement: s, close: func() {}}, nil

	case "mysql":
		db, err := openMySQL(cfg)
		if err != nil {
			return stores{}, fmt.Errorf("could not connect to database after retries: %w", err)
		}
		if err := mysqlRepo.Migrate(db); err != nil {
			return stores{}, fmt.Errorf("failed to migrate database: %w", err)
		}
		return stores{
			content:    mysqlRepo.NewContentRepository(db),
			engagement: mysqlRepo.NewEngagementRepository(db),
			close: func() {
				sqlDB, err := db.DB()
				if err != nil {
					logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
					return
				}
				if err := sqlDB.Close(); err != nil {
					logrus.Errorf("got error when closing the DB connection: %v", err)
				}
			},
		}, nil

	case "mongo":
		client, err := mongoRepo.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return stores{}, err
		}
		db := client.Database(cfg.MongoDBName)
		if err := mongoRepo.EnsureIndexes(ctx, db); err != nil {
			return stores{}, fmt.Errorf("failed to create indexes: %w", err)
		}
		return stores{
			content:    mongoRepo.NewContentRepository(db),
			engagement: mongoRepo.NewEngagementRepository(db),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logrus.Errorf("got error when disconnecting from mongo: %v", err)
				}
			},
		}, nil

	default:
		return stores{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func main() {
	cfg := LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare database
	st, err := openStores(ctx, cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer st.close()

	contentRepo := st.content
	engagementRepo := st.engagement
	var bloomRepo domain.BloomRepository

	// prepare cache
	if cfg.CacheHost != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.CacheHost + ":" + cfg.CachePort,
			Password: cfg.CachePass,
			DB:       cfg.CacheDB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				logrus.Errorf("got error when closing the cache connection: %v", err)
			}
		}()
		if _, err := client.Ping(ctx).Result(); err != nil {
			logrus.Fatalf("failed to open connection to cache: %v", err)
		}

		contentCache := myRedisCache.NewContentCache(client)
		bloomRepo = myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)
		cached := repository.NewContentRepository(st.content, contentCache)
		contentRepo = cached
		engagementRepo = repository.NewEngagementRepository(st.engagement, cached, bloomRepo)
	}

	ids := identity.New()

	var mediaStorage domain.MediaStorage
	if cfg.MinioEndpoint != "" {
		mediaCfg := media.Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
			Bucket:    cfg.MinioBucket,
			PublicURL: cfg.MinioPublicURL,
		}
		minioClient, err := media.NewMinioClient(mediaCfg)
		if err != nil {
			logrus.Fatalf("failed to create minio client: %v", err)
		}
		storage, err := media.NewStorage(ctx, minioClient, mediaCfg, ids)
		if err != nil {
			logrus.Fatalf("failed to prepare media bucket: %v", err)
		}
		mediaStorage = storage
	} else {
		logrus.Warn("MINIO_ENDPOINT not set, uploads are disabled")
	}

	// Build service Layer
	contentSvc := content.NewService(contentRepo, mediaStorage, bloomRepo, ids)
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
	})
	contactSvc := contact.NewService(mailer, cfg.EmailUser, cfg.ContactRecipient)

	// Prepare bloom filter
	if err := contentSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatalf("failed to init bloom filter: %v", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS(cfg.AllowedOrigins))
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// Register routes
	route.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Home Page")
	})
	for _, mount := range []struct {
		path string
		kind domain.Kind
	}{
		{"/api/blogs", domain.KindBlog},
		{"/api/videos", domain.KindVideo},
	} {
		engagementSvc := engagement.NewService(mount.kind, engagementRepo, ids)
		rest.RegisterContentRoutes(route.Group(mount.path),
			rest.NewContentHandler(contentSvc, mount.kind),
			rest.NewEngagementHandler(engagementSvc),
			authMiddleware)
	}
	rest.RegisterContactRoutes(route.Group("/api/contactus"), rest.NewContactHandler(contactSvc), authMiddleware)

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server exiting")
}
