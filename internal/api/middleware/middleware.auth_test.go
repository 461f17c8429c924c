package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lets_reconcile/config"
	"lets_reconcile/internal/global"
)

const testJwtSecret = "auth-middleware-test-secret"

// newGuardedApp dựng app với route được bảo vệ, không cần MongoDB:
// token không hợp lệ phải bị từ chối trước khi chạm tới database.
func newGuardedApp(t *testing.T) *fiber.App {
	t.Helper()

	global.MongoDB_ServerConfig = &config.Configuration{JwtSecret: testJwtSecret}
	_, _ = global.RegistryCollections.Register(global.MongoDB_ColNames.Users, nil)
	_, _ = global.RegistryCollections.Register(global.MongoDB_ColNames.Roles, nil)

	app := fiber.New()
	guarded := app.Group("/guarded")
	guarded.Use(AuthMiddleware(""))
	guarded.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func signTestToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId": "64f000000000000000000000",
		"iat":    time.Now().Add(-2 * time.Hour).Unix(),
		"exp":    expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err, "Ký token test phải thành công")
	return signed
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newGuardedApp(t)

	req := httptest.NewRequest("GET", "/guarded/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err, "Request không được lỗi transport")
	assert.Equal(t, 401, resp.StatusCode, "Thiếu Authorization header phải trả 401")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := newGuardedApp(t)

	req := httptest.NewRequest("GET", "/guarded/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err, "Request không được lỗi transport")
	assert.Equal(t, 401, resp.StatusCode, "Header sai định dạng Bearer phải trả 401")
}

func TestAuthMiddleware_ForgedToken(t *testing.T) {
	app := newGuardedApp(t)

	// Token ký bằng secret khác phải bị chặn ngay ở bước xác minh chữ ký,
	// trước khi tra cứu database
	forged := signTestToken(t, "other-secret", time.Now().Add(time.Hour))
	req := httptest.NewRequest("GET", "/guarded/ping", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err := app.Test(req)
	require.NoError(t, err, "Request không được lỗi transport")
	assert.Equal(t, 401, resp.StatusCode, "Token giả mạo phải trả 401")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	app := newGuardedApp(t)

	expired := signTestToken(t, testJwtSecret, time.Now().Add(-time.Hour))
	req := httptest.NewRequest("GET", "/guarded/ping", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err := app.Test(req)
	require.NoError(t, err, "Request không được lỗi transport")
	assert.Equal(t, 401, resp.StatusCode, "Token hết hạn phải trả 401")
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	app := newGuardedApp(t)

	req := httptest.NewRequest("GET", "/guarded/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err, "Request không được lỗi transport")
	assert.Equal(t, 401, resp.StatusCode, "Chuỗi không phải JWT phải trả 401")
}
