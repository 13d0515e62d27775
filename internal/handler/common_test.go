package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePageDefaults(t *testing.T) {
	p := parsePage(testContext(t, "/posts"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Size)
	assert.Equal(t, 0, p.Offset())
}

func TestParsePageCapsSize(t *testing.T) {
	p := parsePage(testContext(t, "/posts?page=3&page_size=500"))
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.Size)
	assert.Equal(t, 200, p.Offset())
}

func TestParsePageRejectsGarbage(t *testing.T) {
	p := parsePage(testContext(t, "/posts?page=-1&page_size=abc"))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Size)
}

func TestPaginatedLinks(t *testing.T) {
	c := testContext(t, "/posts?page=2&page_size=10")
	c.Request.Host = "testserver"
	body := paginated(c, 25, pageParams{Page: 2, Size: 10}, []string{})
	assert.Equal(t, int64(25), body["count"])
	assert.Equal(t, "http://testserver/posts?page=3&page_size=10", body["next"])
	assert.Equal(t, "http://testserver/posts?page=1&page_size=10", body["previous"])
}

func TestPaginatedEdges(t *testing.T) {
	c := testContext(t, "/posts")
	body := paginated(c, 5, pageParams{Page: 1, Size: 10}, []string{})
	assert.Nil(t, body["next"])
	assert.Nil(t, body["previous"])
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "first_name", snakeCase("FirstName"))
	assert.Equal(t, "username", snakeCase("Username"))
	assert.Equal(t, "content", snakeCase("Content"))
}

func TestBindingErrorsPerField(t *testing.T) {
	c := testContext(t, "/users/register")
	c.Request = httptest.NewRequest(http.MethodPost, "/users/register",
		strings.NewReader(`{"username": "al", "email": "nope", "password": "short"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req RegisterRequest
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)

	fields := bindingErrors(err)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
	assert.Equal(t, []string{"enter a valid email address"}, fields["email"])
	assert.Equal(t, []string{"this field is required"}, fields["first_name"])
}
