package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func createAppointment(t *testing.T, r *gin.Engine, session string, body map[string]interface{}) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/appuntamenti", body, session)
	if w.Code != http.StatusCreated {
		t.Fatalf("create appointment %v: status = %d, body = %s", body, w.Code, w.Body.String())
	}
}

func TestAppointment_CreateRequiresDate(t *testing.T) {
	r, _ := newTestServer(t)
	session := registerAndLogin(t, r, "app@b.it", "Volontario")

	w := doJSON(t, r, http.MethodPost, "/api/appuntamenti",
		map[string]interface{}{"Titolo": "Colloquio"}, session)
	if w.Code != http.StatusBadRequest {
		t.Errorf("create without date: status = %d, want 400", w.Code)
	}
}

func TestAppointment_MonthFilter(t *testing.T) {
	r, _ := newTestServer(t)
	session := registerAndLogin(t, r, "app2@b.it", "Volontario")

	// boundary instants of March plus one outside
	dates := []string{
		"2024-03-01T00:00:00",
		"2024-03-31T23:59:59",
		"2024-04-01T00:00:00",
	}
	for _, d := range dates {
		createAppointment(t, r, session, map[string]interface{}{
			"Titolo":              "Visita",
			"DataOraAppuntamento": d,
		})
	}

	rows := decodeList(t, doJSON(t, r, http.MethodGet, "/api/appuntamenti?mese_anno=2024-03", nil, session))
	if len(rows) != 2 {
		t.Errorf("march rows = %d, want 2", len(rows))
	}
}

func TestAppointment_MalformedMonthFilter(t *testing.T) {
	r, _ := newTestServer(t)
	session := registerAndLogin(t, r, "app3@b.it", "Volontario")

	for _, m := range []string{"2024-13", "abcd"} {
		w := doJSON(t, r, http.MethodGet, "/api/appuntamenti?mese_anno="+m, nil, session)
		if w.Code != http.StatusBadRequest {
			t.Errorf("mese_anno=%s: status = %d, want 400", m, w.Code)
		}
	}
}

func TestAppointment_FamilyNameEnrichment(t *testing.T) {
	r, _ := newTestServer(t)
	session := registerAndLogin(t, r, "app4@b.it", "Volontario")

	family := createdID(t, doJSON(t, r, http.MethodPost, "/api/famiglie",
		map[string]interface{}{"NomeFamiglia": "Bianchi"}, session))

	createAppointment(t, r, session, map[string]interface{}{
		"ID_Famiglia":         family,
		"DataOraAppuntamento": "2024-05-10T15:00:00",
	})
	createAppointment(t, r, session, map[string]interface{}{
		"DataOraAppuntamento": "2024-05-11T15:00:00",
	})

	rows := decodeList(t, doJSON(t, r, http.MethodGet, "/api/appuntamenti", nil, session))
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["NomeFamiglia"] != "Bianchi" {
		t.Errorf("NomeFamiglia = %v, want Bianchi", rows[0]["NomeFamiglia"])
	}
	if _, present := rows[1]["NomeFamiglia"]; present {
		t.Errorf("row without family carries NomeFamiglia: %v", rows[1])
	}
}

func TestAppointment_UnknownReferences(t *testing.T) {
	r, _ := newTestServer(t)
	session := registerAndLogin(t, r, "app5@b.it", "Volontario")

	w := doJSON(t, r, http.MethodPost, "/api/appuntamenti", map[string]interface{}{
		"ID_Famiglia":         999,
		"DataOraAppuntamento": "2024-05-10T15:00:00",
	}, session)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown family: status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/appuntamenti", map[string]interface{}{
		"ID_Attivita":         999,
		"DataOraAppuntamento": "2024-05-10T15:00:00",
	}, session)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown activity: status = %d, want 404", w.Code)
	}
}

func TestAppointment_InvalidStatus(t *testing.T) {
	r, _ := newTestServer(t)
	session := registerAndLogin(t, r, "app6@b.it", "Volontario")

	w := doJSON(t, r, http.MethodPost, "/api/appuntamenti", map[string]interface{}{
		"DataOraAppuntamento": "2024-05-10T15:00:00",
		"Stato":               "Rimandato",
	}, session)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status: status = %d, want 400", w.Code)
	}
}
