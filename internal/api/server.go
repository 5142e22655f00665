package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sekolahdev/admission_service/config"
	"github.com/sekolahdev/admission_service/infra/queue"
	"github.com/sekolahdev/admission_service/internal/api/rest/handlers"
	"github.com/sekolahdev/admission_service/internal/domain"
	"github.com/sekolahdev/admission_service/internal/helper"
	"github.com/sekolahdev/admission_service/internal/repository"
	"github.com/sekolahdev/admission_service/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	// submissions carry base64 file payloads inline, so the default 4MB
	// body limit is too tight
	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024,
	})
	log.Printf("KafkaBroker=%q KafkaTopic=%q", cfg.KafkaBroker, cfg.KafkaTopic)

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260515

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Application{},
		&domain.AppConfig{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	seedAdmin(db, cfg)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Load seeds the default form schema on first boot.
	if _, err := configRepo.Load(); err != nil {
		log.Fatalf("config seed error: %v", err)
	}

	// ---------- Service ----------
	admissionSvc := services.NewAdmissionService(
		userRepo,
		appRepo,
		configRepo,
		kafkaProducer,
		authHelper,
	)

	// ---------- Handler ----------
	admissionHandler := handlers.NewAdmissionHandler(admissionSvc, authHelper)
	admissionHandler.SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

func seedAdmin(db *gorm.DB, cfg config.Config) {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set - skip admin seed")
		return
	}

	var existing domain.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("admin seed lookup error: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("admin seed hash error: %v", err)
		return
	}

	if err := db.Create(&domain.User{
		Username:     cfg.AdminUsername,
		FullName:     "Panitia PPDB",
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
	}).Error; err != nil {
		log.Printf("admin seed error: %v", err)
	}
}
