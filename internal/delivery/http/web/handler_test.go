package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"project-request-backend/internal/delivery/http/web"
	"project-request-backend/internal/domain"
	"project-request-backend/internal/form"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	err := web.NewHandler(r, web.Page{
		Brand:        "Dev Scholar",
		ContactEmail: "studio@example.com",
		ProjectTypes: domain.DefaultProjectTypes(),
		NextSteps:    []string{"Check your email for confirmation details"},
	})
	require.NoError(t, err)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRequestForm(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/request")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, `<option value="">Select Project Type</option>`)
	assert.Contains(t, body, `<option value="msc">MSc Project (₦200,000)</option>`)
	assert.Contains(t, body, `<option value="other">Other (Custom Quote)</option>`)
	assert.Contains(t, body, `<input type="text" id="name" name="name" required>`)
	assert.Contains(t, body, `<input type="tel" id="phone" name="phone">`)
	assert.Contains(t, body, `<input type="date" id="deadline" name="deadline">`)
	assert.Contains(t, body, `data-submit-url="/api/submit-request"`)
	assert.Contains(t, body, `data-alert="`+form.AlertText+`"`)
	assert.Contains(t, body, "<li>Check your email for confirmation details</li>")
}

func TestLanding(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/request"`)
	assert.Contains(t, w.Body.String(), "PhD Research")
}

func TestStaticAssets(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/static/request-form.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Submitting Request...")

	w = get(r, "/static/request-form.css")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/static/missing.js")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
