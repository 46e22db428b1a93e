// file: internals/features/classes/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/classes/classes/model"
)

/* ==============================
   CREATE (POST /classes)
============================== */

type CreateClassRequest struct {
	ClassName       string `json:"class_name" validate:"required,min=3,max=120"`
	ClassSubject    string `json:"class_subject" validate:"required,min=2,max=120"`
	ClassPeriod     string `json:"class_period" validate:"required,max=10"`
	ClassCourseCode string `json:"class_course_code" validate:"required,max=20"`
}

func (r *CreateClassRequest) ToModel(teacherID uuid.UUID) *model.ClassModel {
	return &model.ClassModel{
		ClassName:       strings.TrimSpace(r.ClassName),
		ClassSubject:    strings.TrimSpace(r.ClassSubject),
		ClassPeriod:     strings.TrimSpace(r.ClassPeriod),
		ClassCourseCode: strings.ToUpper(strings.TrimSpace(r.ClassCourseCode)),
		ClassTeacherID:  teacherID,
	}
}

/* ==============================
   UPDATE (PATCH /classes/:id) — partial
============================== */

type UpdateClassRequest struct {
	ClassName    *string `json:"class_name" validate:"omitempty,min=3,max=120"`
	ClassSubject *string `json:"class_subject" validate:"omitempty,min=2,max=120"`
	ClassPeriod  *string `json:"class_period" validate:"omitempty,max=10"`
}

// ApplyTo: hanya field yang dikirim yang diubah
func (r *UpdateClassRequest) ApplyTo(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassSubject != nil {
		m.ClassSubject = strings.TrimSpace(*r.ClassSubject)
	}
	if r.ClassPeriod != nil {
		m.ClassPeriod = strings.TrimSpace(*r.ClassPeriod)
	}
}

/* ==============================
   RESPONSE
============================== */

type ClassDTO struct {
	ClassID         uuid.UUID `json:"class_id"`
	ClassName       string    `json:"class_name"`
	ClassSubject    string    `json:"class_subject"`
	ClassPeriod     string    `json:"class_period"`
	ClassCourseCode string    `json:"class_course_code"`
	ClassTeacherID  uuid.UUID `json:"class_teacher_id"`
	ClassCreatedAt  time.Time `json:"class_created_at"`
}

func ToClassDTO(m model.ClassModel) ClassDTO {
	return ClassDTO{
		ClassID:         m.ClassID,
		ClassName:       m.ClassName,
		ClassSubject:    m.ClassSubject,
		ClassPeriod:     m.ClassPeriod,
		ClassCourseCode: m.ClassCourseCode,
		ClassTeacherID:  m.ClassTeacherID,
		ClassCreatedAt:  m.ClassCreatedAt,
	}
}

/* ==============================
   MEMBER RESPONSE
============================== */

type ClassMemberDTO struct {
	ClassStudentID uuid.UUID `json:"class_student_id"`
	StudentID      uuid.UUID `json:"student_id"`
	StudentName    string    `json:"student_name"`
	StudentEmail   string    `json:"student_email"`
	JoinedAt       time.Time `json:"joined_at"`
}
