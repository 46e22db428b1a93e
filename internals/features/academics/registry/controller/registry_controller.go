package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/registry/dto"
	"kampusku_backend/internals/features/academics/registry/model"
	registryService "kampusku_backend/internals/features/academics/registry/service"
	resp "kampusku_backend/internals/helpers"
)

type RegistryController struct {
	DB *gorm.DB
}

func NewRegistryController(db *gorm.DB) *RegistryController {
	return &RegistryController{DB: db}
}

// =============================
// 📄 List courses resmi (paginated + search)
// =============================
func (ctrl *RegistryController) GetCourses(c *fiber.Ctx) error {
	paging := resp.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))

	q := ctrl.DB.WithContext(c.Context()).Model(&model.RegistryCourseModel{}).
		Where("registry_course_active = ?", true)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(registry_course_name) LIKE ? OR LOWER(registry_course_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}

	var courses []model.RegistryCourseModel
	if err := q.Order("registry_course_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}

	result := make([]dto.RegistryCourseDTO, 0, len(courses))
	for _, course := range courses {
		result = append(result, dto.ToRegistryCourseDTO(course))
	}

	p := resp.BuildPaginationFromOffset(total, paging.Offset, paging.Limit)
	p.Count = len(result)
	return resp.JsonList(c, "OK", result, p)
}

// =============================
// 🔍 Get course by code
// =============================
func (ctrl *RegistryController) GetCourseByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return resp.JsonError(c, fiber.StatusBadRequest, "Kode course diperlukan")
	}

	var course model.RegistryCourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&course, "registry_course_code = ?", code).Error; err != nil {
		return resp.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan di registry resmi")
	}

	return resp.JsonOK(c, "OK", dto.ToRegistryCourseDTO(course))
}

// =============================
// ✅ Validate course code (dipakai FE saat register)
// =============================
func (ctrl *RegistryController) ValidateCourse(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	ok, err := registryService.ValidateCourseCode(c.UserContext(), ctrl.DB, code)
	if err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa registry")
	}
	return resp.JsonOK(c, "OK", fiber.Map{
		"course_code": strings.ToUpper(code),
		"valid":       ok,
	})
}

// =============================
// 🔄 Trigger sinkron manual (coordinator only)
// =============================
func (ctrl *RegistryController) SyncNow(c *fiber.Ctx) error {
	if err := registryService.SyncOnce(c.UserContext(), ctrl.DB); err != nil {
		return resp.JsonError(c, fiber.StatusBadGateway, "Sinkron registry gagal")
	}
	return resp.JsonOK(c, "Sinkron registry selesai", nil)
}
