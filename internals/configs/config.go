package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
)

// App menyimpan konfigurasi bertipe (default via viper, override via ENV).
type App struct {
	AccessTTL         time.Duration `mapstructure:"access_ttl"`
	RefreshTTL        time.Duration `mapstructure:"refresh_ttl"`
	RegistrySourceURL string        `mapstructure:"registry_source_url"`
	RegistryCacheTTL  time.Duration `mapstructure:"registry_cache_ttl"`
	RedisAddr         string        `mapstructure:"redis_addr"`
	InviteCodeLength  int           `mapstructure:"invite_code_length"`
}

var Cfg App

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_REFRESH_SECRET berhasil dimuat.")
	}

	loadTyped()
}

// loadTyped membaca konfigurasi bertipe lewat viper (default + ENV override).
func loadTyped() {
	v := viper.New()

	v.SetDefault("access_ttl", "24h")
	v.SetDefault("refresh_ttl", "168h")
	v.SetDefault("registry_source_url", "")
	v.SetDefault("registry_cache_ttl", "6h")
	v.SetDefault("redis_addr", "")
	v.SetDefault("invite_code_length", 8)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("access_ttl", "ACCESS_TTL")
	_ = v.BindEnv("refresh_ttl", "REFRESH_TTL")
	_ = v.BindEnv("registry_source_url", "REGISTRY_SOURCE_URL")
	_ = v.BindEnv("registry_cache_ttl", "REGISTRY_CACHE_TTL")
	_ = v.BindEnv("redis_addr", "REDIS_ADDR")
	_ = v.BindEnv("invite_code_length", "INVITE_CODE_LENGTH")

	if err := v.Unmarshal(&Cfg); err != nil {
		log.Printf("⚠️ Gagal unmarshal config bertipe: %v (pakai default)", err)
		Cfg = App{
			AccessTTL:        24 * time.Hour,
			RefreshTTL:       7 * 24 * time.Hour,
			RegistryCacheTTL: 6 * time.Hour,
			InviteCodeLength: 8,
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
