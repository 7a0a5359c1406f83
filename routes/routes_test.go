package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resortpay/config"
	"resortpay/middleware"
	"resortpay/models"
	"resortpay/repository"
	"resortpay/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func degradedEngine(t *testing.T, secret string) *gin.Engine {
	t.Helper()
	db := config.NewDatabase(nil)
	require.NoError(t, db.Connect(context.Background(), "", config.DefaultDBName))

	return NewEngine(EngineOptions{RequestTimeout: time.Second}, Dependencies{
		Database:     db,
		Guests:       repository.NewGuestRepository(db),
		Transactions: repository.NewTransactionRepository(db),
		Products:     repository.NewProductRepository(db),
		Version:      "test",
		JWTSecret:    secret,
	})
}

func serve(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDegradedModeServesErrors(t *testing.T) {
	r := degradedEngine(t, "")
	id := primitive.NewObjectID().Hex()

	w := serve(r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cases := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/huespedes", ""},
		{http.MethodGet, "/api/huespedes/" + id, ""},
		{http.MethodPost, "/api/huespedes", `{"nombre":"Ana"}`},
		{http.MethodPut, "/api/huespedes/" + id, `{"nombre":"Ana"}`},
		{http.MethodDelete, "/api/huespedes/" + id, ""},
		{http.MethodGet, "/api/transacciones", ""},
		{http.MethodGet, "/api/transacciones/huesped/" + id, ""},
		{http.MethodPost, "/api/transacciones", `{"huespedId":"` + id + `","monto":10}`},
		{http.MethodGet, "/api/productos?categoria=bebidas", ""},
		{http.MethodPost, "/api/productos", `{"nombre":"Taco","precio":30,"categoria":"alimentos","icono":"🌮"}`},
	}
	for _, tc := range cases {
		w := serve(r, tc.method, tc.path, tc.body, nil)
		require.Equal(t, http.StatusInternalServerError, w.Code, tc.method+" "+tc.path)

		var res models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Base de datos no disponible", res.Error)
	}

	w = serve(r, http.MethodGet, "/api/ping", "", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var ping models.PingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ping))
	assert.False(t, ping.Success)
	assert.Equal(t, "Base de datos no disponible", ping.Error)
}

func TestWriteRoutesRequireStaffTokenWhenConfigured(t *testing.T) {
	const secret = "test-secret"
	r := degradedEngine(t, secret)

	w := serve(r, http.MethodPost, "/api/productos", `{"nombre":"Taco","precio":30,"categoria":"alimentos"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	guestToken, err := utils.GenerateToken([]byte(secret), "g1", "guest", time.Hour)
	require.NoError(t, err)
	w = serve(r, http.MethodPost, "/api/productos", `{"nombre":"Taco","precio":30,"categoria":"alimentos"}`,
		map[string]string{"Authorization": "Bearer " + guestToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	staffToken, err := utils.GenerateToken([]byte(secret), "s1", utils.RoleStaff, time.Hour)
	require.NoError(t, err)
	w = serve(r, http.MethodPost, "/api/productos", `{"nombre":"Taco","precio":30,"categoria":"alimentos"}`,
		map[string]string{"Authorization": "Bearer " + staffToken})
	// autorizado; falla después por falta de base de datos
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// lecturas abiertas
	w = serve(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := degradedEngine(t, "")

	w := serve(r, http.MethodGet, "/", "", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = serve(r, http.MethodGet, "/", "", map[string]string{middleware.RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	middleware.InitMetrics()
	r := degradedEngine(t, "")

	serve(r, http.MethodGet, "/", "", nil)
	w := serve(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestCORSConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)
	assert.False(t, all.AllowCredentials)

	some := corsConfig([]string{"https://resort.example"})
	assert.False(t, some.AllowAllOrigins)
	assert.Equal(t, []string{"https://resort.example"}, some.AllowOrigins)
	assert.True(t, some.AllowCredentials)
}
