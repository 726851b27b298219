package observability

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstrumentedApp() *fiber.App {
	app := fiber.New()
	app.Use(HTTPMetrics())
	app.Get("/widgets", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusBadRequest)
	})
	app.Post("/widgets", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestHTTPMetrics_LabelsSurviveRequestReuse(t *testing.T) {
	app := newInstrumentedApp()
	gets := httpRequestsTotal.WithLabelValues("GET", "/widgets", "400")
	posts := httpRequestsTotal.WithLabelValues("POST", "/widgets", "201")
	getsBefore := testutil.ToFloat64(gets)
	postsBefore := testutil.ToFloat64(posts)

	for i := 0; i < 12; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/widgets", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/widgets", strings.NewReader("{}")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	assert.Equal(t, getsBefore+12, testutil.ToFloat64(gets))
	assert.Equal(t, postsBefore+12, testutil.ToFloat64(posts))

	_, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)
}

func TestHTTPMetrics_UnmatchedRoute(t *testing.T) {
	app := newInstrumentedApp()
	unmatched := httpRequestsTotal.WithLabelValues("GET", UnmatchedPath, "404")
	before := testutil.ToFloat64(unmatched)

	for _, path := range []string{"/nope", "/also/missing", "/widgets/7"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(unmatched))
}
