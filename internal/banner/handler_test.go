package banner

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func makeApp(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(testSecret)}))
	h.RegisterProtectedRoutes(app)
	return app
}

func signedToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestGetBanners_Public(t *testing.T) {
	app := makeApp(NewHandler(NewService(NewInMemoryRepository(seedBanners(), []int{5, 6}))))

	res, err := app.Test(httptest.NewRequest("GET", "/api/banners", nil))
	if err != nil {
		t.Fatalf("banners request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var items []Banner
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode banners: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 banners, got %d", len(items))
	}
}

func TestPutPromoted_RequiresToken(t *testing.T) {
	app := makeApp(NewHandler(NewService(NewInMemoryRepository(nil, []int{5}))))

	req := httptest.NewRequest("PUT", "/api/banners/promoted", strings.NewReader(`{"ids":[1,2]}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode == fiber.StatusOK {
		t.Fatalf("promoted update must not succeed without a token")
	}
}

func TestPutPromoted_WithToken(t *testing.T) {
	repo := NewInMemoryRepository(nil, []int{5})
	app := makeApp(NewHandler(NewService(repo)))
	token := signedToken(t)

	req := httptest.NewRequest("PUT", "/api/banners/promoted", strings.NewReader(`{"ids":[3,1,3]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	stored, _ := repo.Promoted()
	if len(stored) != 2 || stored[0] != 3 || stored[1] != 1 {
		t.Fatalf("unexpected stored ids %v", stored)
	}

	bad := httptest.NewRequest("PUT", "/api/banners/promoted", strings.NewReader(`{"ids":[]}`))
	bad.Header.Set("Content-Type", "application/json")
	bad.Header.Set("Authorization", "Bearer "+token)
	res2, err := app.Test(bad)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty list, got %d", res2.StatusCode)
	}
}
