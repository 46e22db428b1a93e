package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "kampusku_backend/internals/features/users/auth/repository"
)

func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// Interval dari env (default: 24 jam)
		intervalHours := 24
		if val := os.Getenv("TOKEN_BLACKLIST_CLEANUP_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			if n, err := authRepo.CleanupExpiredBlacklist(db); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
