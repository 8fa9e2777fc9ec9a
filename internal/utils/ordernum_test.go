package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	t.Run("Has expected shape", func(t *testing.T) {
		num := GenerateOrderNumber()

		parts := strings.Split(num, "-")
		assert.Len(t, parts, 4)
		assert.Equal(t, "ORD", parts[0])
		assert.Len(t, parts[1], 8) // yyyymmdd
		assert.Len(t, parts[2], 6) // hhmmss
		assert.Len(t, parts[3], 8) // uuid fragment
	})

	t.Run("Unique across rapid calls", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 1000; i++ {
			num := GenerateOrderNumber()
			assert.False(t, seen[num], "duplicate order number %s", num)
			seen[num] = true
		}
	})
}
