package locale_test

import (
	"testing"

	"shakwa-be/locale"

	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#F59E0B", locale.StatusColor("قيد المعالجة"))
	assert.Equal(t, "#10B981", locale.StatusColor("تم الحل"))
	assert.Equal(t, "#EF4444", locale.StatusColor("مرفوض"))
	assert.Equal(t, "#6B7280", locale.StatusColor("anything else"))
}
