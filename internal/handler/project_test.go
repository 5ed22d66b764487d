package handler_test

import (
	"net/http"
	"testing"
)

func TestProject_CreateAndList(t *testing.T) {
	r, _ := newTestServer(t)
	admin := registerAndLogin(t, r, "prj@b.it", "Admin")

	w := doJSON(t, r, http.MethodPost, "/api/progetti", map[string]interface{}{
		"NomeProgetto": "Raccolta alimentare",
		"DataInizio":   "2024-01-15",
		"Stato":        "In Corso",
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create project: status = %d, body = %s", w.Code, w.Body.String())
	}

	rows := decodeList(t, doJSON(t, r, http.MethodGet, "/api/progetti", nil, ""))
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0]["NomeProgetto"] != "Raccolta alimentare" {
		t.Errorf("NomeProgetto = %v", rows[0]["NomeProgetto"])
	}
	if rows[0]["Stato"] != "In Corso" {
		t.Errorf("Stato = %v, want In Corso", rows[0]["Stato"])
	}
	if rows[0]["DataInizio"] != "2024-01-15" {
		t.Errorf("DataInizio = %v, want 2024-01-15", rows[0]["DataInizio"])
	}
}

func TestProject_DefaultStatus(t *testing.T) {
	r, _ := newTestServer(t)
	admin := registerAndLogin(t, r, "prj2@b.it", "Admin")

	doJSON(t, r, http.MethodPost, "/api/progetti",
		map[string]interface{}{"NomeProgetto": "Doposcuola"}, admin)

	rows := decodeList(t, doJSON(t, r, http.MethodGet, "/api/progetti", nil, ""))
	if rows[0]["Stato"] != "Pianificato" {
		t.Errorf("Stato = %v, want Pianificato", rows[0]["Stato"])
	}
}

func TestProject_InvalidStatus(t *testing.T) {
	r, _ := newTestServer(t)
	admin := registerAndLogin(t, r, "prj3@b.it", "Admin")

	w := doJSON(t, r, http.MethodPost, "/api/progetti", map[string]interface{}{
		"NomeProgetto": "X", "Stato": "Sospeso",
	}, admin)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status: status = %d, want 400", w.Code)
	}
}

func TestActivity_ListOrderedByDateDesc(t *testing.T) {
	r, _ := newTestServer(t)
	admin := registerAndLogin(t, r, "act@b.it", "Admin")

	for _, d := range []string{"2024-02-10T10:00:00", "2024-03-10T10:00:00"} {
		w := doJSON(t, r, http.MethodPost, "/api/attivita", map[string]interface{}{
			"NomeAttivita": "Evento " + d,
			"DataAttivita": d,
		}, admin)
		if w.Code != http.StatusCreated {
			t.Fatalf("create activity: status = %d, body = %s", w.Code, w.Body.String())
		}
	}

	rows := decodeList(t, doJSON(t, r, http.MethodGet, "/api/attivita", nil, ""))
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["NomeAttivita"] != "Evento 2024-03-10T10:00:00" {
		t.Errorf("first row = %v, want most recent activity", rows[0]["NomeAttivita"])
	}
}

func TestActivity_OptionalProject(t *testing.T) {
	r, _ := newTestServer(t)
	admin := registerAndLogin(t, r, "act2@b.it", "Admin")

	// no project reference at all
	w := doJSON(t, r, http.MethodPost, "/api/attivita",
		map[string]interface{}{"NomeAttivita": "Indipendente"}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create without project: status = %d", w.Code)
	}

	// unknown project is rejected
	w = doJSON(t, r, http.MethodPost, "/api/attivita", map[string]interface{}{
		"NomeAttivita": "Orfana", "ID_Progetto": 999,
	}, admin)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown project: status = %d, want 404", w.Code)
	}
}
