package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePatternEscapesMetacharacters(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"phone", "%phone%"},
		{"100%", `%100\%%`},
		{"snake_case", `%snake\_case%`},
		{`back\slash`, `%back\\slash%`},
		{"", "%%"},
		{`_%\`, `%\_\%\\%`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, likePattern(tt.term), tt.term)
	}
}
