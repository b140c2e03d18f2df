package container

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bookstore-api/internal/config"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/pkg/jwt"
	"bookstore-api/pkg/logger"

	catalogHandler "bookstore-api/internal/domains/catalog/handler"
	catalogRepo "bookstore-api/internal/domains/catalog/repository"
	homeHandler "bookstore-api/internal/domains/home/handler"
	userHandler "bookstore-api/internal/domains/user/handler"
	userRepo "bookstore-api/internal/domains/user/repository"
	userService "bookstore-api/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
type Container struct {
	// INFRASTRUCTURE
	Config     *config.Config
	Log        logger.Logger
	Postgres   *database.PostgresDB // nil when the container was built over an existing *gorm.DB
	DB         *gorm.DB
	JWTManager *jwt.Manager

	// REPOSITORIES
	AuthorRepo catalogRepo.AuthorRepository
	BookRepo   catalogRepo.BookRepository
	UserRepo   userRepo.Repository

	// SERVICES
	AuthService userService.AuthService

	// HANDLERS
	AuthorHandler *catalogHandler.AuthorHandler
	BookHandler   *catalogHandler.BookHandler
	UserHandler   *userHandler.UserHandler
	HomeHandler   *homeHandler.HomeHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads configuration, connects to PostgreSQL and wires every layer.
//
// Order matters:
// 1. Config
// 2. Infrastructure (pool, ORM)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer(log logger.Logger) (*Container, error) {
	log.Info("Initializing DI container", nil)

	// STEP 1: LOAD CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// STEP 2: INITIALIZE DATABASE
	dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	pg := database.NewPostgresDB(dbConfig, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := pg.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gormDB, err := pg.OpenGorm()
	if err != nil {
		_ = pg.Close()
		return nil, fmt.Errorf("failed to open orm: %w", err)
	}

	c := Build(cfg, gormDB, log)
	c.Postgres = pg

	log.Info("DI container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// Build wires repositories, services and handlers over an already opened store.
func Build(cfg *config.Config, db *gorm.DB, log logger.Logger) *Container {
	c := &Container{
		Config:     cfg,
		Log:        log,
		DB:         db,
		JWTManager: jwt.NewManager(cfg.JWT.Key, cfg.JWT.Issuer),
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()
	return c
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.AuthorRepo = catalogRepo.NewAuthorRepository(c.DB, c.Log)
	c.BookRepo = catalogRepo.NewBookRepository(c.DB, c.Log)
	c.UserRepo = userRepo.NewGormRepository(c.DB)
}

func (c *Container) initServices() {
	c.AuthService = userService.NewAuthService(c.UserRepo, c.JWTManager, c.Log)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = catalogHandler.NewAuthorHandler(c.AuthorRepo, c.Log)
	c.BookHandler = catalogHandler.NewBookHandler(c.BookRepo, c.Log)
	c.UserHandler = userHandler.NewUserHandler(c.AuthService, c.Log)
	c.HomeHandler = homeHandler.NewHomeHandler(c.Log)
}

// Cleanup releases the connection pool. Called during graceful shutdown.
func (c *Container) Cleanup() {
	if c.Postgres == nil {
		return
	}
	if err := c.Postgres.Close(); err != nil {
		c.Log.Error("Failed to close database", err)
		return
	}
	c.Log.Info("Database connections closed", nil)
}
