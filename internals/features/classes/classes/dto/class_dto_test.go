// file: internals/features/classes/classes/dto/class_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	model "kampusku_backend/internals/features/classes/classes/model"
)

func TestCreateClassRequest_ToModel(t *testing.T) {
	teacherID := uuid.New()
	r := CreateClassRequest{
		ClassName:       "  Struktur Data A ",
		ClassSubject:    "Struktur Data",
		ClassPeriod:     "2026.2",
		ClassCourseCode: " cs101 ",
	}

	m := r.ToModel(teacherID)
	assert.Equal(t, "Struktur Data A", m.ClassName)
	assert.Equal(t, "CS101", m.ClassCourseCode) // dinormalisasi uppercase
	assert.Equal(t, teacherID, m.ClassTeacherID)
}

func TestUpdateClassRequest_ApplyTo_Partial(t *testing.T) {
	m := model.ClassModel{
		ClassName:    "Lama",
		ClassSubject: "Kalkulus",
		ClassPeriod:  "2026.1",
	}

	newName := "Baru"
	r := UpdateClassRequest{ClassName: &newName}
	r.ApplyTo(&m)

	assert.Equal(t, "Baru", m.ClassName)
	// field yang tidak dikirim tidak berubah
	assert.Equal(t, "Kalkulus", m.ClassSubject)
	assert.Equal(t, "2026.1", m.ClassPeriod)
}
