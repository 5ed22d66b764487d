package handler_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestNews_Pagination(t *testing.T) {
	r, _ := newTestServer(t)
	admin := registerAndLogin(t, r, "news@b.it", "Admin")

	for i := 1; i <= 12; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/notizie", map[string]interface{}{
			"Titolo":    fmt.Sprintf("Notizia %d", i),
			"Contenuto": "testo",
		}, admin)
		if w.Code != http.StatusCreated {
			t.Fatalf("create news %d: status = %d", i, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/notizie?page=2&per_page=5", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d", w.Code)
	}
	body := decodeBody(t, w)

	if body["total_items"] != float64(12) {
		t.Errorf("total_items = %v, want 12", body["total_items"])
	}
	if body["total_pages"] != float64(3) {
		t.Errorf("total_pages = %v, want 3", body["total_pages"])
	}
	if body["current_page"] != float64(2) {
		t.Errorf("current_page = %v, want 2", body["current_page"])
	}
	items, ok := body["notizie"].([]interface{})
	if !ok || len(items) != 5 {
		t.Fatalf("page 2 items = %v, want 5", len(items))
	}
}

func TestNews_DefaultsAndOrdering(t *testing.T) {
	r, _ := newTestServer(t)
	admin := registerAndLogin(t, r, "news2@b.it", "Admin")

	for i := 1; i <= 6; i++ {
		doJSON(t, r, http.MethodPost, "/api/notizie", map[string]interface{}{
			"Titolo":    fmt.Sprintf("N%d", i),
			"Contenuto": "testo",
		}, admin)
	}

	body := decodeBody(t, doJSON(t, r, http.MethodGet, "/api/notizie", nil, ""))
	items := body["notizie"].([]interface{})
	if len(items) != 5 {
		t.Errorf("default page size = %d, want 5", len(items))
	}
	if body["current_page"] != float64(1) {
		t.Errorf("current_page = %v, want 1", body["current_page"])
	}
}

func TestNews_CreateRequiresTitleAndContent(t *testing.T) {
	r, _ := newTestServer(t)
	admin := registerAndLogin(t, r, "news3@b.it", "Admin")

	cases := []map[string]interface{}{
		{"Titolo": "solo titolo"},
		{"Contenuto": "solo contenuto"},
	}
	for _, body := range cases {
		if w := doJSON(t, r, http.MethodPost, "/api/notizie", body, admin); w.Code != http.StatusBadRequest {
			t.Errorf("create %v: status = %d, want 400", body, w.Code)
		}
	}
}

func TestNews_AuthorDefaultsToActingUser(t *testing.T) {
	r, _ := newTestServer(t)
	admin := registerAndLogin(t, r, "news4@b.it", "Admin")

	id := createdID(t, doJSON(t, r, http.MethodPost, "/api/notizie", map[string]interface{}{
		"Titolo":    "Senza autore",
		"Contenuto": "testo",
	}, admin))

	got := decodeBody(t, doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/notizie/%d", id), nil, ""))
	if got["Autore"] == "" {
		t.Error("Autore is empty, want acting user id")
	}
}

func TestNews_GetNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/notizie/9999", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("get missing news: status = %d, want 404", w.Code)
	}
}
