package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/allisson/idsmith/internal/httputil"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		expectedOffset int
		expectedLimit  int
		expectError    bool
	}{
		{name: "default values", url: "/", expectedOffset: 0, expectedLimit: 0},
		{name: "valid custom values", url: "/?offset=10&limit=20", expectedOffset: 10, expectedLimit: 20},
		{name: "max limit", url: "/?limit=500", expectedOffset: 0, expectedLimit: 500},
		{name: "limit too large", url: "/?limit=501", expectError: true},
		{name: "zero limit", url: "/?limit=0", expectError: true},
		{name: "negative offset", url: "/?offset=-1", expectError: true},
		{name: "non numeric offset", url: "/?offset=abc", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			offset, limit, err := httputil.ParsePagination(c)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func TestPage(t *testing.T) {
	items := []string{"AD", "AE", "AF", "AG"}

	assert.Equal(t, items, httputil.Page(items, 0, 0))
	assert.Equal(t, []string{"AE", "AF"}, httputil.Page(items, 1, 2))
	assert.Equal(t, []string{"AG"}, httputil.Page(items, 3, 10))
	assert.Empty(t, httputil.Page(items, 4, 1))
	assert.Empty(t, httputil.Page(items, 9, 0))
}
