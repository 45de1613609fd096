package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Config dibaca sekali di startup lalu dibagikan ke route/service.
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	Timezone    string `env:"APP_TIMEZONE" envDefault:"Asia/Manila"`

	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	RateLimitMax   int           `env:"RATE_LIMIT_MAX" envDefault:"100"`
	SubmitRateMax  int           `env:"SUBMIT_RATE_LIMIT_MAX" envDefault:"10"`
	SyncTimeout    time.Duration `env:"GCASH_SYNC_TIMEOUT" envDefault:"10m"`

	JWTSecret string `env:"JWT_SECRET"`

	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"require"`
	DBMigrate  bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`

	SMTPHost     string        `env:"SMTP_HOST"`
	SMTPPort     int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string        `env:"SMTP_USER"`
	SMTPPassword string        `env:"SMTP_PASSWORD"`
	MailFrom     string        `env:"MAIL_FROM" envDefault:"no-reply@sk-youth.local"`
	MailFromName string        `env:"MAIL_FROM_NAME" envDefault:"SK Youth Office"`
	SendTimeout  time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"10s"`

	// Uploads: "local" writes under UploadDir, "oss" uses Aliyun OSS.
	UploadDriver       string `env:"UPLOAD_DRIVER" envDefault:"local"`
	UploadDir          string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadPublicPrefix string `env:"UPLOAD_PUBLIC_PREFIX" envDefault:"/uploads"`
	UploadMaxBytes     int64  `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`
	ImageMaxW          int    `env:"IMAGE_WEBP_MAX_W" envDefault:"1600"`
	ImageMaxH          int    `env:"IMAGE_WEBP_MAX_H" envDefault:"1600"`
	ImageQuality       int    `env:"IMAGE_WEBP_QUALITY" envDefault:"80"`

	OSSEndpoint      string `env:"ALI_OSS_ENDPOINT"`
	OSSAccessKey     string `env:"ALI_OSS_ACCESS_KEY"`
	OSSSecretKey     string `env:"ALI_OSS_SECRET_KEY"`
	OSSSecurityToken string `env:"ALI_OSS_SECURITY_TOKEN"`
	OSSBucket        string `env:"ALI_OSS_BUCKET"`
	OSSPrefix        string `env:"ALI_OSS_PREFIX" envDefault:"skyouth"`

	SeedFile string `env:"SEED_FORMS_FILE"`
}

var (
	JWTSecret string
	App       Config
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env not found, falling back to system ENV")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("❌ config error: %v", err)
	}
	App = cfg
	JWTSecret = cfg.JWTSecret

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if cfg.SMTPHost == "" {
		log.Println("⚠️ SMTP_HOST is not set, notifications are only logged")
	}
}

// Load parses the current environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && !errors.Is(err, gormLogger.ErrRecordNotFound):
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
