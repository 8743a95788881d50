package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cityweather/services/internal/api/handler"
	"github.com/cityweather/services/internal/core/domain"
	"github.com/cityweather/services/internal/core/service"
	"github.com/cityweather/services/internal/infrastructure/userstore"
	"github.com/cityweather/services/internal/mock"
)

const testSecret = "test-secret"

func testOptions() Options {
	return Options{RequestTimeout: 5 * time.Second, Logger: zerolog.Nop()}
}

func newTestAuthRouter(t *testing.T) *echo.Echo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	seed := `{"users":[{"id":1,"username":"test","password":"test","firstName":"Test","lastName":"User"}]}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	store, err := userstore.Open(context.Background(), userstore.NewFileDocument(path))
	require.NoError(t, err)

	tokens := service.NewTokenService(testSecret, time.Hour)
	auth := service.NewAuthService(store, tokens, zerolog.Nop())
	return NewAuthRouter(testOptions(), handler.NewAuthHandler(auth, zerolog.Nop()), RateLimit{})
}

func serve(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func bearer(t *testing.T) map[string]string {
	t.Helper()
	token, err := service.NewTokenService(testSecret, time.Hour).Issue(domain.User{ID: "1", Username: "test"})
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRouter_Preflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	suggestions := service.NewSuggestionService(mock.NewMockCityDirectory(ctrl), zerolog.Nop())
	weather := service.NewWeatherService(mock.NewMockWeatherProvider(ctrl), zerolog.Nop())
	verifier := service.NewTokenService(testSecret, time.Hour)

	routers := map[string]struct {
		e       *echo.Echo
		methods string
	}{
		"auth":        {newTestAuthRouter(t), "POST,OPTIONS"},
		"suggestions": {NewSuggestionsRouter(testOptions(), verifier, handler.NewSuggestionHandler(suggestions, zerolog.Nop())), "GET,OPTIONS"},
		"weather":     {NewWeatherRouter(testOptions(), verifier, handler.NewWeatherHandler(weather, zerolog.Nop())), "GET,OPTIONS"},
	}

	for name, r := range routers {
		for _, path := range []string{"/auth/login", "/weather", "/does/not/exist", "/"} {
			t.Run(name+path, func(t *testing.T) {
				rec := serve(r.e, http.MethodOptions, path, "not json", map[string]string{"Authorization": "garbage"})

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Empty(t, rec.Body.String())
				assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "Content-Type,X-Amz-Date,Authorization,X-Api-Key", rec.Header().Get("Access-Control-Allow-Headers"))
				assert.Equal(t, r.methods, rec.Header().Get("Access-Control-Allow-Methods"))
			})
		}
	}
}

func TestRouter_NotFound(t *testing.T) {
	e := newTestAuthRouter(t)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodPost, "/auth/unknown"},
		{http.MethodGet, "/auth/login"},
		{http.MethodDelete, "/auth/signup"},
	}
	for _, tc := range cases {
		rec := serve(e, tc.method, tc.path, "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestRouter_PanicBecomesInternalError(t *testing.T) {
	e := newTestAuthRouter(t)
	e.GET("/boom", func(echo.Context) error { panic("kaboom") })

	rec := serve(e, http.MethodGet, "/boom", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "kaboom")
}

func TestRouter_Health(t *testing.T) {
	e := newTestAuthRouter(t)

	rec := serve(e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRouter_LoginFlow(t *testing.T) {
	e := newTestAuthRouter(t)

	rec := serve(e, http.MethodPost, "/auth/login", `{"username":"test","password":"test"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var resp struct {
		Message string         `json:"message"`
		Token   string         `json:"token"`
		User    map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, float64(1), resp.User["id"])
	assert.NotContains(t, resp.User, "password")

	claims, err := service.NewTokenService(testSecret, time.Hour).Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "test", claims.Username)

	rec = serve(e, http.MethodPost, "/auth/login", `{"username":"test","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/auth/login", `{"username":"test"`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Username and password are required"}`, rec.Body.String())
}

func TestAuthRouter_SignupFlow(t *testing.T) {
	e := newTestAuthRouter(t)

	rec := serve(e, http.MethodPost, "/auth/signup",
		`{"username":"test","password":"x","firstName":"A","lastName":"B"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Username already exists"}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/auth/signup",
		`{"username":"newuser","password":"pw123","firstName":"New","lastName":"User"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Message string `json:"message"`
		User    struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "User created successfully", created.Message)
	assert.NotEmpty(t, created.User.ID)

	rec = serve(e, http.MethodPost, "/auth/login", `{"username":"newuser","password":"pw123"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodPost, "/auth/signup", `{"username":"x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"All fields are required"}`, rec.Body.String())
}

// stallingStore blocks every call until the request context ends.
type stallingStore struct{}

func (stallingStore) FindByUsername(ctx context.Context, _ string) (*domain.User, error) {
	<-ctx.Done()
	return nil, fmt.Errorf("find user: %w", ctx.Err())
}

func (stallingStore) Create(ctx context.Context, _ domain.User) error {
	<-ctx.Done()
	return fmt.Errorf("insert user: %w", ctx.Err())
}

func TestAuthRouter_StoreTimeoutIsInternalError(t *testing.T) {
	opts := testOptions()
	opts.RequestTimeout = 50 * time.Millisecond
	auth := service.NewAuthService(stallingStore{}, service.NewTokenService(testSecret, time.Hour), zerolog.Nop())
	e := NewAuthRouter(opts, handler.NewAuthHandler(auth, zerolog.Nop()), RateLimit{})

	rec := serve(e, http.MethodPost, "/auth/login", `{"username":"test","password":"test"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/auth/signup",
		`{"username":"slow","password":"pw","firstName":"S","lastName":"L"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestAuthRouter_RateLimited(t *testing.T) {
	e := NewAuthRouter(testOptions(), handler.NewAuthHandler(nil, zerolog.Nop()), RateLimit{PerSecond: 1, Burst: 1})

	first := serve(e, http.MethodPost, "/auth/login", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, first.Code)

	second := serve(e, http.MethodPost, "/auth/login", `{}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// preflight is never limited
	pre := serve(e, http.MethodOptions, "/auth/login", "", nil)
	assert.Equal(t, http.StatusOK, pre.Code)
}

func TestAuthRouter_RateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	e := NewAuthRouter(testOptions(), handler.NewAuthHandler(nil, zerolog.Nop()), RateLimit{PerSecond: 1, Burst: 1})

	limited := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
		req.RemoteAddr = "198.51.100.20:40000"
		req.Header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("203.0.113.%d", i+1))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 19, limited)
}

func TestAuthRouter_RateLimitKeysOnClientBehindPrivateProxy(t *testing.T) {
	e := NewAuthRouter(testOptions(), handler.NewAuthHandler(nil, zerolog.Nop()), RateLimit{PerSecond: 1, Burst: 1})

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
		req.RemoteAddr = "10.0.0.5:40000"
		req.Header.Set(echo.HeaderXForwardedFor, client)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusBadRequest, send("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.1"))
	// a client-supplied first hop does not change the identity the proxy appended
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.99, 203.0.113.1"))
	assert.Equal(t, http.StatusBadRequest, send("203.0.113.2"))
}

func TestSuggestionsRouter(t *testing.T) {
	suggestions := []domain.CitySuggestion{
		{Name: "London", State: "Greater London", Country: "UK", Coordinates: domain.Coordinates{Lat: 51.5074, Lon: -0.1278}, FullLabel: "London, Greater London, UK"},
		{Name: "Long Beach", State: "California", Country: "USA", Coordinates: domain.Coordinates{Lat: 33.7701, Lon: -118.1937}, FullLabel: "Long Beach, California, USA"},
	}

	t.Run("unauthenticated requests never reach the directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := mock.NewMockCityDirectory(ctrl) // no expectations: any call fails the test
		e := NewSuggestionsRouter(testOptions(), service.NewTokenService(testSecret, time.Hour),
			handler.NewSuggestionHandler(service.NewSuggestionService(directory, zerolog.Nop()), zerolog.Nop()))

		rec := serve(e, http.MethodGet, "/city/suggestions?query=Lon", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"No token provided"}`, rec.Body.String())

		rec = serve(e, http.MethodGet, "/city/suggestions?query=Lon", "", map[string]string{"Authorization": "Bearer invalid-token"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
	})

	t.Run("valid token returns suggestions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := mock.NewMockCityDirectory(ctrl)
		directory.EXPECT().Search(gomock.Any(), "Lon").Return(suggestions, nil).Times(2)
		e := NewSuggestionsRouter(testOptions(), service.NewTokenService(testSecret, time.Hour),
			handler.NewSuggestionHandler(service.NewSuggestionService(directory, zerolog.Nop()), zerolog.Nop()))

		first := serve(e, http.MethodGet, "/city/suggestions?query=Lon", "", bearer(t))
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())

		var got []domain.CitySuggestion
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &got))
		require.Len(t, got, 2)
		for _, s := range got {
			assert.Contains(t, s.FullLabel, s.Name)
			assert.NotZero(t, s.Coordinates.Lat)
			assert.NotZero(t, s.Coordinates.Lon)
		}

		second := serve(e, http.MethodGet, "/city/suggestions?query=Lon", "", bearer(t))
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("missing query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		e := NewSuggestionsRouter(testOptions(), service.NewTokenService(testSecret, time.Hour),
			handler.NewSuggestionHandler(service.NewSuggestionService(mock.NewMockCityDirectory(ctrl), zerolog.Nop()), zerolog.Nop()))

		rec := serve(e, http.MethodGet, "/city/suggestions", "", bearer(t))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Query parameter is required."}`, rec.Body.String())
	})
}

func TestWeatherRouter(t *testing.T) {
	newRouter := func(provider *mock.MockWeatherProvider) *echo.Echo {
		return NewWeatherRouter(testOptions(), service.NewTokenService(testSecret, time.Hour),
			handler.NewWeatherHandler(service.NewWeatherService(provider, zerolog.Nop()), zerolog.Nop()))
	}

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		e := newRouter(mock.NewMockWeatherProvider(ctrl))

		rec := serve(e, http.MethodGet, "/weather?city=London", "", map[string]string{"Authorization": "Bearer"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("idempotent success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock.NewMockWeatherProvider(ctrl)
		provider.EXPECT().CurrentByCity(gomock.Any(), "London").
			Return(&domain.WeatherSnapshot{Name: "London", Cod: 200, Sys: domain.WeatherSys{Country: "GB"}}, nil).Times(2)
		e := newRouter(provider)

		first := serve(e, http.MethodGet, "/weather?city=London", "", bearer(t))
		second := serve(e, http.MethodGet, "/weather?city=London", "", bearer(t))

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Contains(t, first.Body.String(), `"name":"London"`)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock.NewMockWeatherProvider(ctrl)
		provider.EXPECT().CurrentByCity(gomock.Any(), "NonexistentCity").Return(nil, domain.ErrCityNotFound)
		e := newRouter(provider)

		rec := serve(e, http.MethodGet, "/weather?city=NonexistentCity", "", bearer(t))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"City not found."}`, rec.Body.String())
	})

	t.Run("upstream failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock.NewMockWeatherProvider(ctrl)
		provider.EXPECT().CurrentByCity(gomock.Any(), "London").
			Return(nil, &domain.UpstreamError{Provider: "openweather", Status: 503, Message: "Failed to fetch weather data: Service Unavailable"})
		e := newRouter(provider)

		rec := serve(e, http.MethodGet, "/weather?city=London", "", bearer(t))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch weather data: Service Unavailable"}`, rec.Body.String())
	})
}
