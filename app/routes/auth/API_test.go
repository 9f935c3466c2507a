package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mvpi-scorecard/app/config"
	"mvpi-scorecard/app/database"
	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/storage"

	"github.com/gofiber/fiber/v2"
)

func setupTestApp(t *testing.T) (*fiber.App, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	config.AppConfig = &config.Config{Store: store}

	app := fiber.New()
	SetupAuthRoutes(app)
	return app, store
}

func createTestUser(t *testing.T, store storage.Store, email, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := &models.User{Name: "Test User", Email: email, Password: hash, Role: role}
	if err := database.CreateUser(store, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestLoginAPI(t *testing.T) {
	app, store := setupTestApp(t)
	user := createTestUser(t, store, "tech@shop.example", "s3cret", models.RoleTech)

	t.Run("valid credentials log in", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/login", `{"email":"tech@shop.example","password":"s3cret"}`)
		if resp.StatusCode != 200 {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var cookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == "jwt_token" {
				cookie = c
			}
		}
		if cookie == nil || cookie.Value == "" {
			t.Fatal("login did not set the jwt_token cookie")
		}

		claims, err := ValidateJWT(cookie.Value)
		if err != nil {
			t.Fatalf("cookie token failed validation: %v", err)
		}
		if claims.UserID != user.ID || claims.Role != models.RoleTech {
			t.Errorf("claims = (%s, %s), want (%s, tech)", claims.UserID, claims.Role, user.ID)
		}

		// The password hash must never appear in the response body
		body, _ := io.ReadAll(resp.Body)
		if strings.Contains(string(body), user.Password) || strings.Contains(string(body), `"password"`) {
			t.Error("login response leaks the password hash")
		}
	})

	t.Run("email match is case-insensitive", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/login", `{"email":"TECH@shop.example","password":"s3cret"}`)
		if resp.StatusCode != 200 {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/login", `{"email":"tech@shop.example","password":"wrong"}`)
		if resp.StatusCode != 401 {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/login", `{"email":"nobody@shop.example","password":"s3cret"}`)
		if resp.StatusCode != 401 {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})
}

func TestChangePasswordAPI(t *testing.T) {
	app, store := setupTestApp(t)
	user := createTestUser(t, store, "advisor@shop.example", "oldpass", models.RoleAdvisor)

	token, err := GenerateJWT(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	change := httptest.NewRequest("POST", "/auth/change-password",
		strings.NewReader(`{"current_password":"oldpass","new_password":"newpass"}`))
	change.Header.Set("Content-Type", "application/json")
	change.AddCookie(&http.Cookie{Name: "jwt_token", Value: token})
	resp, err := app.Test(change, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 200 (body: %s)", resp.StatusCode, body)
	}

	// The old password stops working, the new one logs in
	if resp := postJSON(t, app, "/auth/login", `{"email":"advisor@shop.example","password":"oldpass"}`); resp.StatusCode != 401 {
		t.Errorf("old password still accepted, status = %d", resp.StatusCode)
	}
	if resp := postJSON(t, app, "/auth/login", `{"email":"advisor@shop.example","password":"newpass"}`); resp.StatusCode != 200 {
		t.Errorf("new password rejected, status = %d", resp.StatusCode)
	}
}

func TestGetUsersAPIDoesNotLeakHashes(t *testing.T) {
	store := storage.NewMemoryStore()
	config.AppConfig = &config.Config{Store: store}
	createTestUser(t, store, "tech@shop.example", "s3cret", models.RoleTech)

	users, err := database.GetAllUsers(store)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(users)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"password"`) || strings.Contains(string(data), "$2a$") {
		t.Errorf("API serialization of users leaks the password hash: %s", data)
	}
}
