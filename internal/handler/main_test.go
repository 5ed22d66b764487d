package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/DadoBotGaming/voluntary-association/internal/config"
	"github.com/DadoBotGaming/voluntary-association/internal/database"
	"github.com/DadoBotGaming/voluntary-association/internal/router"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testCookie = "va_session"

var dbCounter int64

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Mode: gin.TestMode},
		Session:  config.SessionConfig{CookieName: testCookie, ExpireHours: 1},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
		App:      config.AppSubConfig{NewsPageSize: 5},
	}
}

// newTestServer builds the real router over a private in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	n := atomic.AddInt64(&dbCounter, 1)
	path := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)

	db, err := database.Init(config.DatabaseConfig{Path: path})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return router.SetupRouter(testConfig(), db), db
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, session string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: session})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerAndLogin creates a user with the given role and returns its
// session token.
func registerAndLogin(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/register", map[string]interface{}{
		"email":    email,
		"password": "segreta",
		"nome":     "Mario",
		"cognome":  "Rossi",
		"ruolo":    role,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status = %d, body = %s", email, w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]interface{}{
		"email":    email,
		"password": "segreta",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status = %d, body = %s", email, w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie && c.Value != "" {
			return c.Value
		}
	}
	t.Fatalf("login %s: no session cookie in response", email)
	return ""
}

func createdID(t *testing.T, w *httptest.ResponseRecorder) uint {
	t.Helper()
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	for _, key := range []string{"id", "id_carico"} {
		if v, ok := body[key].(float64); ok {
			return uint(v)
		}
	}
	t.Fatalf("create: no id in response %s", w.Body.String())
	return 0
}
