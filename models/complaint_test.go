package models_test

import (
	"regexp"
	"testing"

	"shakwa-be/models"

	"github.com/stretchr/testify/assert"
)

// TestGenerateComplaintID_Format verifies the tracking id is always exactly
// six digits, including zero-padded low draws.
func TestGenerateComplaintID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)

	for i := 0; i < 500; i++ {
		id := models.GenerateComplaintID()
		assert.Regexp(t, pattern, id, "tracking id must be 6 digits")
	}
}

func TestIsValidGovernorate(t *testing.T) {
	assert.True(t, models.IsValidGovernorate("القاهرة"))
	assert.True(t, models.IsValidGovernorate("البحر الأحمر"))
	assert.False(t, models.IsValidGovernorate(""))
	assert.False(t, models.IsValidGovernorate("Cairo"))
}

func TestIsValidMinistry(t *testing.T) {
	assert.True(t, models.IsValidMinistry("مديرية الصحة"))
	assert.True(t, models.IsValidMinistry("إدارة المرور"))
	assert.False(t, models.IsValidMinistry(""))
	assert.False(t, models.IsValidMinistry("وزارة غير موجودة"))
}

// TestComplaintStatusLabels pins the stored Arabic status labels; back-office
// tooling matches on these exact strings.
func TestComplaintStatusLabels(t *testing.T) {
	assert.Equal(t, models.ComplaintStatus("قيد المعالجة"), models.StatusInReview)
	assert.Equal(t, models.ComplaintStatus("تم الحل"), models.StatusResolved)
	assert.Equal(t, models.ComplaintStatus("مرفوض"), models.StatusRejected)
}
