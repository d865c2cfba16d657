package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [min, max].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseLimitOffset - читает limit/offset из query с дефолтами и границами.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil {
		limit = ClampInt(v, 1, maxLimit)
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return
}

// ParseFields — читает ?fields=a,b,c: обрезает пробелы, отбрасывает пустые
// элементы и дубликаты (порядок первого вхождения сохраняется).
// Если параметр отсутствует или пуст — возвращает копию defaults.
func ParseFields(c *gin.Context, defaults []string) []string {
	raw := c.Query("fields")
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), defaults...)
	}

	seen := make(map[string]struct{})
	fields := make([]string, 0, 8)
	for _, part := range strings.Split(raw, ",") {
		f := strings.TrimSpace(part)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	return fields
}
