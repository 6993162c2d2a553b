package config

import (
	"context"
	"log"
	"os"

	"sabores-api/kvstore"
	"sabores-api/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// KV holds per-session state: serialized carts and favorite item lists
var KV kvstore.Store

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "sabores_de_hogar_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "sabores.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Ingredient{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seedAdmin()

	log.Println("✅ Database connected and migrated successfully")
}

// InitKV picks Redis when REDIS_ADDR is set, in-memory otherwise
func InitKV() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		KV = kvstore.NewMemoryStore()
		log.Println("Session store: in-memory (set REDIS_ADDR for Redis)")
		return
	}
	rs := kvstore.NewRedisStore(addr)
	if err := rs.Ping(context.Background()); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	KV = rs
	log.Println("Session store: Redis at", addr)
}

// seedAdmin creates the initial admin account when ADMIN_EMAIL is set and no
// admin exists yet
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		return
	}
	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	admin := models.User{
		ID:           uuid.NewString(),
		Name:         "Administrador",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	log.Println("Seeded admin user", email)
}
