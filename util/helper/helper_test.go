package helper_util

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest("GET", "/items?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	limit, offset, err := GetPaginationParams(contextWithQuery(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, limit)
	assert.Equal(t, 0, offset)

	limit, offset, err = GetPaginationParams(contextWithQuery("limit=5&offset=10"))
	require.NoError(t, err)
	assert.Equal(t, 5, limit)
	assert.Equal(t, 10, offset)

	for _, q := range []string{"limit=abc", "limit=0", "limit=501", "offset=-1", "offset=x"} {
		_, _, err := GetPaginationParams(contextWithQuery(q))
		assert.Error(t, err, q)
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, Page(items, 2, 0))
	assert.Equal(t, []int{4, 5}, Page(items, 10, 3))
	assert.Empty(t, Page(items, 2, 5))
}

func TestParseTime(t *testing.T) {
	want := time.Date(2020, 1, 2, 3, 4, 5, 6, time.UTC)

	got, err := ParseTime(FormatTime(want))
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = ParseTime(want)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	_, err = ParseTime(nil)
	assert.Error(t, err)
	_, err = ParseTime(42)
	assert.Error(t, err)
	_, err = ParseTime("yesterday")
	assert.Error(t, err)
}
