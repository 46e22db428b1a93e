// file: internals/features/academics/registry/service/registry_sync_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/academics/registry/model"
)

/* =========================================================
   SOURCE PAYLOAD
========================================================= */

// registrySourceCourse: bentuk payload dari registry resmi eksternal
type registrySourceCourse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Degree      string   `json:"degree"`
	Modality    string   `json:"modality"`
	Institution string   `json:"institution"`
	Campuses    []string `json:"campuses"`
}

/* =========================================================
   SYNC
========================================================= */

// StartRegistrySync: sinkron awal + periodik di background.
// REGISTRY_SOURCE_URL kosong ⇒ pakai seed bawaan (sekali saja).
func StartRegistrySync(db *gorm.DB) {
	go func() {
		time.Sleep(1 * time.Second) // beri waktu DB/migrasi siap

		for {
			if err := SyncOnce(context.Background(), db); err != nil {
				log.Printf("[REGISTRY] sync gagal: %v", err)
			}

			if configs.Cfg.RegistrySourceURL == "" {
				return // seed statis, tidak perlu re-sync
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}

// SyncOnce: tarik data registry (URL atau seed) lalu upsert ke registry_courses.
func SyncOnce(ctx context.Context, db *gorm.DB) error {
	var courses []registrySourceCourse

	if url := configs.Cfg.RegistrySourceURL; url != "" {
		body, err := fetchRegistry(url)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, &courses); err != nil {
			return fmt.Errorf("decode payload registry: %w", err)
		}
		log.Printf("[REGISTRY] %d course diterima dari sumber resmi", len(courses))
	} else {
		courses = seedCourses
		log.Printf("[REGISTRY] sumber tidak diset, pakai %d course seed bawaan", len(courses))
	}

	return UpsertCourses(ctx, db, courses)
}

// fetchRegistry: GET payload via fiber Agent
func fetchRegistry(url string) ([]byte, error) {
	agent := fiber.Get(url)
	agent.Timeout(10 * time.Second)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("fetch registry: %v", errs[0])
	}
	if status != fiber.StatusOK {
		return nil, fmt.Errorf("fetch registry: status %d", status)
	}
	return body, nil
}

// UpsertCourses: idempotent, konflik di kode resmi ⇒ update kolom deskriptif
func UpsertCourses(ctx context.Context, db *gorm.DB, courses []registrySourceCourse) error {
	now := time.Now().UTC()

	rows := make([]model.RegistryCourseModel, 0, len(courses))
	for _, c := range courses {
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		if code == "" || strings.TrimSpace(c.Name) == "" {
			continue // baris sumber tidak lengkap, skip
		}

		raw, _ := json.Marshal(c)
		rows = append(rows, model.RegistryCourseModel{
			RegistryCourseCode:          code,
			RegistryCourseName:          strings.TrimSpace(c.Name),
			RegistryCourseDegree:        strings.ToLower(strings.TrimSpace(c.Degree)),
			RegistryCourseModality:      normalizeModality(c.Modality),
			RegistryCourseInstitution:   strings.TrimSpace(c.Institution),
			RegistryCourseCampuses:      c.Campuses,
			RegistryCourseSourcePayload: datatypes.JSON(raw),
			RegistryCourseActive:        true,
			RegistryCourseSyncedAt:      now,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "registry_course_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"registry_course_name",
			"registry_course_degree",
			"registry_course_modality",
			"registry_course_institution",
			"registry_course_campuses",
			"registry_course_source_payload",
			"registry_course_active",
			"registry_course_synced_at",
		}),
	}).Create(&rows).Error
}

func normalizeModality(m string) string {
	switch strings.ToLower(strings.TrimSpace(m)) {
	case "distance", "ead":
		return "distance"
	case "hybrid":
		return "hybrid"
	default:
		return "on_campus"
	}
}

/* =========================================================
   VALIDATION (dipakai register & classes)
========================================================= */

// ValidateCourseCode: true kalau kode course aktif di registry resmi.
// Lookup di-cache (Redis) supaya register tidak bolak-balik ke DB.
func ValidateCourseCode(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return false, nil
	}

	cacheKey := "registry:course:" + code
	if val, ok := cacheGet(ctx, cacheKey); ok {
		return val == "1", nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&model.RegistryCourseModel{}).
		Where("registry_course_code = ? AND registry_course_active = ?", code, true).
		Count(&count).Error; err != nil {
		return false, err
	}

	val := "0"
	if count > 0 {
		val = "1"
	}
	cacheSet(ctx, cacheKey, val, configs.Cfg.RegistryCacheTTL)

	return count > 0, nil
}
