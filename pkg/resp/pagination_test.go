package resp

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageForQuery(t *testing.T, query string) Page {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/items"+query, nil)
	return ParsePage(c)
}

func TestParsePageDefaults(t *testing.T) {
	p := pageForQuery(t, "")
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, DefaultPageSize, p.Size)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePageBounds(t *testing.T) {
	p := pageForQuery(t, "?page=3&perpage=20")
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, 20, p.Size)
	assert.Equal(t, 40, p.Offset())

	p = pageForQuery(t, "?page=-1&perpage=500")
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, MaxPageSize, p.Size)

	p = pageForQuery(t, "?page=abc&perpage=abc")
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, DefaultPageSize, p.Size)
}

func TestPageLinksAtBoundaries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "http://api.test/items?page=2&perpage=2", nil)
	p := ParsePage(c)

	next := pageLink(c, p, p.Number+1, 5)
	require.NotNil(t, next)
	assert.Contains(t, next, "page=3")
	assert.Contains(t, next, "http://api.test/items")

	prev := pageLink(c, p, p.Number-1, 5)
	require.NotNil(t, prev)
	assert.Contains(t, prev, "page=1")

	// Page 3 holds the 5th row; page 4 is out of range.
	assert.Nil(t, pageLink(c, p, 4, 5))
	assert.Nil(t, pageLink(c, p, 0, 5))
}
