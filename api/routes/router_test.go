package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/locallinkhq/locallink-backend/pkg/auth"
	"github.com/locallinkhq/locallink-backend/pkg/config"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/logger"
)

func testRouter(t *testing.T) (http.Handler, config.JWTConfig) {
	t.Helper()
	jwtCfg := config.JWTConfig{
		Secret:            "router-test-secret",
		Issuer:            "locallink-test",
		ExpirationMinutes: 15,
	}
	// Service deps stay nil: role checks must reject before any handler runs.
	handler := New(Deps{
		Config: &config.Config{JWT: jwtCfg},
		Logger: logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard}),
	})
	return handler, jwtCfg
}

func mintToken(t *testing.T, cfg config.JWTConfig, role enums.UserRole) string {
	t.Helper()
	token, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRouterEnforcesRoleBoundaries(t *testing.T) {
	t.Parallel()

	handler, jwtCfg := testRouter(t)
	customerToken := mintToken(t, jwtCfg, enums.UserRoleCustomer)
	vendorToken := mintToken(t, jwtCfg, enums.UserRoleVendor)

	cases := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{"vendor cannot place orders", http.MethodPost, "/api/v1/orders", vendorToken, http.StatusForbidden},
		{"vendor cannot list customer orders", http.MethodGet, "/api/v1/orders", vendorToken, http.StatusForbidden},
		{"vendor cannot place bookings", http.MethodPost, "/api/v1/bookings", vendorToken, http.StatusForbidden},
		{"vendor cannot list customer bookings", http.MethodGet, "/api/v1/bookings", vendorToken, http.StatusForbidden},
		{"customer cannot list vendor orders", http.MethodGet, "/api/v1/vendor/orders", customerToken, http.StatusForbidden},
		{"customer cannot manage products", http.MethodPost, "/api/v1/vendor/products", customerToken, http.StatusForbidden},
		{"anonymous cannot place orders", http.MethodPost, "/api/v1/orders", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader("{}"))
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}
