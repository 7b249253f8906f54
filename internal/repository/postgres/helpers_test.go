package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLimit(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, defaultSearchLimit},
		{-5, defaultSearchLimit},
		{10, 10},
		{maxSearchLimit, maxSearchLimit},
		{maxSearchLimit + 1, maxSearchLimit},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeLimit(tc.in), "in=%d", tc.in)
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\ ok`, escapeLike(`50% off_now \ ok`))
	assert.Equal(t, "golang", escapeLike("golang"))
}
