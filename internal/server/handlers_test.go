package server

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/runs?page=3&limit=200&bad=abc&negative=-5", nil)

	assert.Equal(t, 3, parseQueryInt(r, "page", 1, 0))
	assert.Equal(t, 100, parseQueryInt(r, "limit", 20, 100))
	assert.Equal(t, 20, parseQueryInt(r, "bad", 20, 100))
	assert.Equal(t, 20, parseQueryInt(r, "negative", 20, 100))
	assert.Equal(t, 1, parseQueryInt(r, "missing", 1, 0))
}
