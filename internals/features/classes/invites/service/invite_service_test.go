// file: internals/features/classes/invites/service/invite_service_test.go
package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "kampusku_backend/internals/features/classes/classes/model"
	inviteModel "kampusku_backend/internals/features/classes/invites/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&classModel.ClassModel{},
		&classModel.ClassStudentModel{},
		&inviteModel.ClassInviteModel{},
	))
	return db
}

func newClass(t *testing.T, db *gorm.DB) *classModel.ClassModel {
	t.Helper()
	class := &classModel.ClassModel{
		ClassName:       "Struktur Data A",
		ClassSubject:    "Struktur Data",
		ClassPeriod:     "2026.2",
		ClassCourseCode: "CS101",
		ClassTeacherID:  uuid.New(),
	}
	require.NoError(t, db.Create(class).Error)
	return class
}

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code, 8)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, ch), "unexpected char %q in %s", ch, code)
		}
		seen[code] = true
	}
	// 50 kode acak 8 karakter nyaris mustahil tabrakan
	assert.Greater(t, len(seen), 45)
}

func TestInviteModelHelpers(t *testing.T) {
	now := time.Now().UTC()
	invite := inviteModel.ClassInviteModel{
		ClassInviteExpiresAt: now.Add(time.Hour),
		ClassInviteMaxUses:   2,
		ClassInviteUses:      0,
		ClassInviteActive:    true,
	}

	assert.False(t, invite.IsExpired(now))
	assert.False(t, invite.IsExhausted())
	assert.True(t, invite.Usable(now))

	invite.ClassInviteUses = 2
	assert.True(t, invite.IsExhausted())
	assert.False(t, invite.Usable(now))

	invite.ClassInviteUses = 1
	assert.True(t, invite.IsExpired(now.Add(2*time.Hour)))
	assert.False(t, invite.Usable(now.Add(2*time.Hour)))

	invite.ClassInviteActive = false
	assert.False(t, invite.Usable(now))
}

func TestCreateInvite(t *testing.T) {
	db := newTestDB(t)
	class := newClass(t, db)

	expiresAt := time.Now().UTC().Add(24 * time.Hour)
	invite, err := CreateInvite(db, class.ClassID, class.ClassTeacherID, expiresAt, 3)
	require.NoError(t, err)
	assert.Len(t, invite.ClassInviteCode, 8)
	assert.Equal(t, 3, invite.ClassInviteMaxUses)
	assert.Equal(t, 0, invite.ClassInviteUses)
	assert.True(t, invite.ClassInviteActive)

	// kolom waktu harus bisa dibaca balik utuh dari DB
	var reloaded inviteModel.ClassInviteModel
	require.NoError(t, db.First(&reloaded, "class_invite_id = ?", invite.ClassInviteID).Error)
	assert.WithinDuration(t, expiresAt, reloaded.ClassInviteExpiresAt, time.Second)
}

func TestCreateInvite_DefaultMaxUses(t *testing.T) {
	db := newTestDB(t)
	class := newClass(t, db)

	invite, err := CreateInvite(db, class.ClassID, class.ClassTeacherID, time.Now().UTC().Add(time.Hour), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, invite.ClassInviteMaxUses)
}

func TestJoinByCode(t *testing.T) {
	db := newTestDB(t)
	class := newClass(t, db)
	invite, err := CreateInvite(db, class.ClassID, class.ClassTeacherID, time.Now().UTC().Add(time.Hour), 2)
	require.NoError(t, err)

	studentA := uuid.New()
	studentB := uuid.New()
	studentC := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		member, err := JoinByCode(db, invite.ClassInviteCode, studentA)
		require.NoError(t, err)
		assert.Equal(t, class.ClassID, member.ClassStudentClassID)
		assert.Equal(t, studentA, member.ClassStudentStudentID)
		require.NotNil(t, member.ClassStudentInviteID)
		assert.Equal(t, invite.ClassInviteID, *member.ClassStudentInviteID)

		var fromDB inviteModel.ClassInviteModel
		require.NoError(t, db.First(&fromDB, "class_invite_id = ?", invite.ClassInviteID).Error)
		assert.Equal(t, 1, fromDB.ClassInviteUses)
	})

	t.Run("lowercase code accepted", func(t *testing.T) {
		_, err := JoinByCode(db, strings.ToLower(invite.ClassInviteCode), studentB)
		require.NoError(t, err)
	})

	t.Run("already member", func(t *testing.T) {
		_, err := JoinByCode(db, invite.ClassInviteCode, studentA)
		assert.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("exhausted", func(t *testing.T) {
		_, err := JoinByCode(db, invite.ClassInviteCode, studentC)
		assert.ErrorIs(t, err, ErrInviteExhausted)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := JoinByCode(db, "ZZZZZZZZ", studentC)
		assert.ErrorIs(t, err, ErrInviteNotFound)
	})
}

func TestJoinByCode_Expired(t *testing.T) {
	db := newTestDB(t)
	class := newClass(t, db)

	invite := &inviteModel.ClassInviteModel{
		ClassInviteClassID:   class.ClassID,
		ClassInviteCreatedBy: class.ClassTeacherID,
		ClassInviteCode:      "EXPIRED2",
		ClassInviteExpiresAt: time.Now().UTC().Add(-time.Minute),
		ClassInviteMaxUses:   5,
		ClassInviteActive:    true,
	}
	require.NoError(t, db.Create(invite).Error)

	_, err := JoinByCode(db, invite.ClassInviteCode, uuid.New())
	assert.ErrorIs(t, err, ErrInviteExpired)
}

func TestJoinByCode_Inactive(t *testing.T) {
	db := newTestDB(t)
	class := newClass(t, db)

	invite, err := CreateInvite(db, class.ClassID, class.ClassTeacherID, time.Now().UTC().Add(time.Hour), 5)
	require.NoError(t, err)
	require.NoError(t, db.Model(&inviteModel.ClassInviteModel{}).
		Where("class_invite_id = ?", invite.ClassInviteID).
		Update("class_invite_active", false).Error)

	_, err = JoinByCode(db, invite.ClassInviteCode, uuid.New())
	assert.ErrorIs(t, err, ErrInviteInactive)
}

func TestJoinByCode_ClassDeleted(t *testing.T) {
	db := newTestDB(t)
	class := newClass(t, db)
	invite, err := CreateInvite(db, class.ClassID, class.ClassTeacherID, time.Now().UTC().Add(time.Hour), 5)
	require.NoError(t, err)

	require.NoError(t, db.Delete(class).Error)

	_, err = JoinByCode(db, invite.ClassInviteCode, uuid.New())
	assert.ErrorIs(t, err, ErrClassNotFound)
}
