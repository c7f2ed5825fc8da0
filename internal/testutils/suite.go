package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"garage-backend/internal/config"
	"garage-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "garage"
	pgPassword = "garage-test"
	pgDatabase = "garage_test"
)

// One Postgres container serves every integration suite of a test binary.
var shared struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
	tables   []string
}

// BaseTestSuite hands a migrated database and a matching configuration to integration suites.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and fails the test if it cannot.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = startSharedPostgres() })
	if shared.err != nil {
		t.Fatalf("failed to initialize shared test container: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.config}
}

// CleanupSharedContainer closes the connection pool and purges the container.
// Each integration package calls it from its TestMain.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool != nil && shared.resource != nil {
		if err := shared.pool.Purge(shared.resource); err != nil {
			log.Printf("WARN: could not purge postgres container: %v", err)
		}
		shared.resource = nil
		shared.pool = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every model table and resets identities, so tenant ids
// and card ids start from scratch in each test.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(shared.tables) == 0 {
		return
	}
	quoted := make([]string, len(shared.tables))
	for i, t := range shared.tables {
		quoted[i] = `"` + t + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: could not truncate test tables: %v", err)
	}
}

func startSharedPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	shared.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
			"TZ=Europe/Istanbul",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	shared.resource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		return fmt.Errorf("postgres not ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return err
	}
	shared.db = db

	tables, err := modelTables(db)
	if err != nil {
		return err
	}
	shared.tables = tables
	shared.config = testConfig(dsn)

	log.Printf("Shared Postgres ready on port %s with tables %v", port, tables)
	return nil
}

// modelTables resolves the table name of every migrated model.
func modelTables(db *gorm.DB) ([]string, error) {
	models := database.Models()
	tables := make([]string, 0, len(models))
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return tables, nil
}

func testConfig(dsn string) *config.Config {
	return &config.Config{
		Environment:     "test",
		Port:            "8080",
		LogLevel:        "debug",
		DatabaseURL:     dsn,
		JWTSecret:       "test-secret",
		JWTExpiration:   time.Hour,
		RateLimitGlobal: 100,
		RateLimitAuth:   10,
		RateLimitWindow: time.Minute,
		WebhookTimeout:  2 * time.Second,
		AdminUsername:   "admin",
	}
}
