package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/business-console-api/internal/auth"
	"github.com/business-console-api/internal/config"
	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/handler"
	"github.com/business-console-api/internal/repository"
	"github.com/business-console-api/internal/service"
	"github.com/business-console-api/internal/storage"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к БД
	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := migrate(db, sqlDB, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Создание учётной записи оператора при первом запуске
	if err := seedAdminUser(db, logger); err != nil {
		logger.Error("failed to seed admin user", slog.Any("error", err))
		os.Exit(1)
	}

	// Хранилище файлов документов
	files, err := newFileStorage(cfg.Storage)
	if err != nil {
		logger.Error("failed to init file storage", slog.Any("error", err))
		os.Exit(1)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Инициализация репозиториев
	companyRepo := repository.NewCompanyRepository(db)
	unitRepo := repository.NewLocalUnitRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	hrRepo := repository.NewHRRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Инициализация сервисов
	authService := service.NewAuthService(userRepo, tokens)
	companyService := service.NewCompanyService(companyRepo)
	unitService := service.NewLocalUnitService(unitRepo, companyRepo, propertyRepo)
	deptService := service.NewDepartmentService(deptRepo, unitRepo, hrRepo)
	hrService := service.NewHRService(hrRepo, companyRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo, deptRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, unitRepo, hrRepo)
	propertyService := service.NewPropertyService(propertyRepo, companyRepo)
	docService := service.NewDocumentService(docRepo, moduleRepo, companyRepo, files)

	// Инициализация хендлеров
	authHandler := handler.NewAuthHandler(authService, logger)
	companyHandler := handler.NewCompanyHandler(companyService, logger)
	unitHandler := handler.NewLocalUnitHandler(unitService, logger)
	deptHandler := handler.NewDepartmentHandler(deptService, logger)
	hrHandler := handler.NewHRHandler(hrService, logger)
	equipmentHandler := handler.NewEquipmentHandler(equipmentService, logger)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, logger)
	propertyHandler := handler.NewPropertyHandler(propertyService, logger)
	docHandler := handler.NewDocumentHandler(docService, logger)

	// Настройка роутера
	router := handler.NewRouter(
		tokens,
		authHandler,
		companyHandler,
		unitHandler,
		deptHandler,
		hrHandler,
		equipmentHandler,
		vehicleHandler,
		propertyHandler,
		docHandler,
		logger,
	)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	if cfg.Driver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	}

	var db *gorm.DB
	var err error

	for range 30 {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
		if err == nil {
			sqlDB, _ := db.DB()
			if sqlDB.Ping() == nil {
				return db, nil
			}
		}
		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)
}

// migrate накатывает goose-миграции на PostgreSQL. Для sqlite
// (локальная разработка) DDL миграций не переносим, схему строит GORM
func migrate(db *gorm.DB, sqlDB *sql.DB, driver string) error {
	if driver == "sqlite" {
		return autoMigrate(db)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Company{},
		&domain.Property{},
		&domain.LocalUnit{},
		&domain.Department{},
		&domain.HR{},
		&domain.HRDepartment{},
		&domain.Equipment{},
		&domain.Vehicle{},
		&domain.Module{},
		&domain.Document{},
		&domain.User{},
	); err != nil {
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}

	names := []string{"companies", "local-units", "departments", "hr", "equipments", "vehicles", "properties"}
	for _, name := range names {
		var count int64
		if err := db.Model(&domain.Module{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&domain.Module{UUID: uuid.NewString(), Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// seedAdminUser создаёт учётную запись оператора, если пользователей ещё нет.
// Учётные данные берутся из ADMIN_EMAIL и ADMIN_PASSWORD
func seedAdminUser(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Warn("no users exist and ADMIN_EMAIL/ADMIN_PASSWORD are not set, login will be impossible")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &domain.User{
		UUID:         uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	logger.Info("admin user created", slog.String("email", email))
	return nil
}

func newFileStorage(cfg config.StorageConfig) (storage.FileStorage, error) {
	if cfg.Driver == "s3" {
		return storage.NewS3Storage(context.Background(), storage.S3Options{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
	}
	return storage.NewDiskStorage(cfg.Dir)
}
