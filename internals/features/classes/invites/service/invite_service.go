// file: internals/features/classes/invites/service/invite_service.go
package service

import (
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kampusku_backend/internals/configs"
	classModel "kampusku_backend/internals/features/classes/classes/model"
	inviteModel "kampusku_backend/internals/features/classes/invites/model"
)

// Huruf/angka yang tidak ambigu (tanpa 0/O, 1/I/L)
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

var (
	ErrInviteNotFound  = errors.New("invite tidak ditemukan")
	ErrInviteExpired   = errors.New("invite sudah kedaluwarsa")
	ErrInviteExhausted = errors.New("kuota invite sudah habis")
	ErrInviteInactive  = errors.New("invite sudah dinonaktifkan")
	ErrAlreadyMember   = errors.New("sudah menjadi anggota kelas")
	ErrClassNotFound   = errors.New("kelas tidak ditemukan")
)

// GenerateCode membuat kode undangan acak dari alfabet tanpa karakter ambigu.
func GenerateCode() (string, error) {
	length := configs.Cfg.InviteCodeLength
	if length <= 0 {
		length = 8
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(length)
	for _, b := range buf {
		sb.WriteByte(codeAlphabet[int(b)%len(codeAlphabet)])
	}
	return sb.String(), nil
}

// CreateInvite membuat invite baru untuk kelas (dipanggil dari controller teacher).
// Retry beberapa kali kalau kode tabrakan dengan unique index.
func CreateInvite(db *gorm.DB, classID, createdBy uuid.UUID, expiresAt time.Time, maxUses int) (*inviteModel.ClassInviteModel, error) {
	if maxUses <= 0 {
		maxUses = 1
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		code, err := GenerateCode()
		if err != nil {
			return nil, err
		}
		invite := &inviteModel.ClassInviteModel{
			ClassInviteClassID:   classID,
			ClassInviteCreatedBy: createdBy,
			ClassInviteCode:      code,
			ClassInviteExpiresAt: expiresAt.UTC(),
			ClassInviteMaxUses:   maxUses,
			ClassInviteActive:    true,
		}
		if err := db.Create(invite).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
				lastErr = err
				continue
			}
			return nil, err
		}
		return invite, nil
	}
	return nil, lastErr
}

// JoinByCode: student join kelas lewat kode invite.
// Transaksi dengan row lock agar kuota tidak lolos lebih dari max_uses saat join bersamaan.
func JoinByCode(db *gorm.DB, code string, studentID uuid.UUID) (*classModel.ClassStudentModel, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	now := time.Now().UTC()

	var member *classModel.ClassStudentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("class_invite_code = ?", code)
		// FOR UPDATE hanya untuk postgres; sqlite serialize sendiri
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var invite inviteModel.ClassInviteModel
		if err := q.First(&invite).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInviteNotFound
			}
			return err
		}

		if !invite.ClassInviteActive {
			return ErrInviteInactive
		}
		if invite.IsExpired(now) {
			return ErrInviteExpired
		}
		if invite.IsExhausted() {
			return ErrInviteExhausted
		}

		// Kelas harus masih ada (soft delete dihormati)
		var class classModel.ClassModel
		if err := tx.First(&class, "class_id = ?", invite.ClassInviteClassID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&classModel.ClassStudentModel{}).
			Where("class_student_class_id = ? AND class_student_student_id = ?", invite.ClassInviteClassID, studentID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyMember
		}

		inviteID := invite.ClassInviteID
		member = &classModel.ClassStudentModel{
			ClassStudentClassID:   invite.ClassInviteClassID,
			ClassStudentStudentID: studentID,
			ClassStudentInviteID:  &inviteID,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		invite.ClassInviteUses++
		return tx.Model(&inviteModel.ClassInviteModel{}).
			Where("class_invite_id = ?", invite.ClassInviteID).
			Update("class_invite_uses", invite.ClassInviteUses).Error
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}
