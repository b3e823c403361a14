package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromOffset(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		offset, limit int
		wantPage      int
		wantPages     int
		wantHasNext   bool
		wantHasPrev   bool
	}{
		{"primera página", 45, 0, 20, 1, 3, true, false},
		{"página intermedia", 45, 20, 20, 2, 3, true, true},
		{"última página", 45, 40, 20, 3, 3, false, true},
		{"sin resultados", 0, 0, 20, 1, 1, false, false},
		{"límite cero usa el default", 100, 0, 0, 1, 5, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPaginationFromOffset(tt.total, tt.offset, tt.limit)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Equal(t, tt.wantHasNext, got.HasNext)
			assert.Equal(t, tt.wantHasPrev, got.HasPrev)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(fiber.StatusUnprocessableEntity))
	assert.Equal(t, "CONFLICT", statusToErrorCode(fiber.StatusConflict))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(502))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
