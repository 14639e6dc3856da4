package router_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"manolos-gestion/internal/router"
)

func TestHTTP_EndToEnd_ChargeLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	operatorID := "op-1"

	// 1) Alta de cliente
	clientID := createResource(t, ts.URL, "/clients", operatorID, map[string]any{
		"nombre":   "Ana María",
		"correo":   "ana@example.com",
		"telefono": "3001234567",
	})

	// 2) Alta de servicio
	serviceID := createResource(t, ts.URL, "/services", operatorID, map[string]any{
		"nombre": "Baño completo",
		"tarifa": "15000",
	})

	// 3) Cobro por 2 unidades
	chargeID := createResource(t, ts.URL, "/charges", operatorID, map[string]any{
		"clienteId":     clientID,
		"servicioId":    serviceID,
		"cantidad":      2,
		"montoUnitario": "15000",
	})

	// 4) El listado trae el total calculado
	{
		st, body := doReq(t, ts.URL, "GET", "/charges", operatorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list charges, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("parse charges: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 charge, got %d", len(items))
		}
		if items[0]["estado"] != "pendiente" {
			t.Fatalf("expected estado pendiente, got %v", items[0]["estado"])
		}
	}

	// 5) Cambio de estado a pagado
	{
		st, body := doReq(t, ts.URL, "PUT", "/charges/"+chargeID+"/estado", operatorID, map[string]any{
			"estado": "pagado",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update estado, got %d body=%s", st, string(body))
		}
	}

	// 6) Estado fuera del enum => 400
	{
		st, _ := doReq(t, ts.URL, "PUT", "/charges/"+chargeID+"/estado", operatorID, map[string]any{
			"estado": "abonado",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid estado, got %d", st)
		}
	}

	// 7) Comprobante PDF con headers de descarga
	{
		req, _ := http.NewRequest("GET", ts.URL+"/charges/"+chargeID+"/receipt", nil)
		req.Header.Set("X-Debug-User-ID", operatorID)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("receipt request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 receipt, got %d", resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", ct)
		}
		cd := resp.Header.Get("Content-Disposition")
		if !strings.Contains(cd, "comprobante_"+chargeID+".pdf") {
			t.Fatalf("unexpected Content-Disposition %q", cd)
		}
		body, _ := io.ReadAll(resp.Body)
		if !bytes.HasPrefix(body, []byte("%PDF")) {
			t.Fatalf("receipt body is not a PDF")
		}
	}

	// 8) Comprobante de cobro inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/charges/ghost/receipt", operatorID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 receipt for unknown charge, got %d", st)
		}
	}

	// 9) Export CSV del rango abierto
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/csv", operatorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 csv, got %d body=%s", st, string(body))
		}
		records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
		if err != nil {
			t.Fatalf("parse csv: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected header + 1 row, got %d", len(records))
		}
		if records[1][0] != "Ana María" || records[1][1] != "Baño completo" {
			t.Fatalf("unexpected csv row: %v", records[1])
		}
		if records[1][3] != "30000" {
			t.Fatalf("expected Monto 30000, got %q", records[1][3])
		}
	}
}

func TestHTTP_ChargeRejectsUnknownReferences(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	operatorID := "op-1"

	st, body := doReq(t, ts.URL, "POST", "/charges", operatorID, map[string]any{
		"clienteId":     "ghost",
		"servicioId":    "ghost",
		"montoUnitario": "100",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown client, got %d body=%s", st, string(body))
	}
}

func TestHTTP_PetLimitPerClient(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	operatorID := "op-1"

	clientID := createResource(t, ts.URL, "/clients", operatorID, map[string]any{
		"nombre":   "Ana",
		"correo":   "ana@example.com",
		"telefono": "3001234567",
	})

	for i := 0; i < 7; i++ {
		st, body := doReq(t, ts.URL, "POST", "/pets", operatorID, map[string]any{
			"clienteId": clientID,
			"nombre":    "Rocky",
			"especie":   "perro",
		})
		if st != http.StatusCreated {
			t.Fatalf("pet %d: expected 201, got %d body=%s", i, st, string(body))
		}
	}

	st, body := doReq(t, ts.URL, "POST", "/pets", operatorID, map[string]any{
		"clienteId": clientID,
		"nombre":    "Rocky 8",
		"especie":   "perro",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for 8th pet, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), "máximo de 7 mascotas") {
		t.Fatalf("unexpected error body: %s", string(body))
	}
}

func TestHTTP_Reminders(t *testing.T) {
	// Sin mailer: los recordatorios Email terminan en fallo, WhatsApp en pendiente.
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	operatorID := "op-1"

	clientID := createResource(t, ts.URL, "/clients", operatorID, map[string]any{
		"nombre":   "Ana",
		"correo":   "ana@example.com",
		"telefono": "3001234567",
	})

	// Cliente inexistente => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/reminders", operatorID, map[string]any{
			"clienteId": "ghost",
			"medio":     "Email",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown client, got %d", st)
		}
	}

	// Medio inválido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/reminders", operatorID, map[string]any{
			"clienteId": clientID,
			"medio":     "Paloma",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid medio, got %d", st)
		}
	}

	createResource(t, ts.URL, "/reminders", operatorID, map[string]any{
		"clienteId": clientID,
		"medio":     "WhatsApp",
	})
	createResource(t, ts.URL, "/reminders", operatorID, map[string]any{
		"clienteId": clientID,
		"medio":     "Email",
	})

	st, body := doReq(t, ts.URL, "GET", "/reminders", operatorID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list reminders, got %d", st)
	}
	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("parse reminders: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(items))
	}

	statuses := map[string]string{}
	for _, it := range items {
		statuses[it["medio"].(string)] = it["estado"].(string)
	}
	if statuses["WhatsApp"] != "pendiente" {
		t.Fatalf("expected WhatsApp pendiente, got %q", statuses["WhatsApp"])
	}
	if statuses["Email"] != "fallo" {
		t.Fatalf("expected Email fallo sin mailer, got %q", statuses["Email"])
	}
}

func TestHTTP_AuthRegisterLogin(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// /auth/* es público: sin X-Debug-User-ID.
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"nombre":   "Manolo",
			"correo":   "manolo@example.com",
			"password": "secreta",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
		}
	}

	// Correo repetido => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"nombre":   "Otro",
			"correo":   "manolo@example.com",
			"password": "secreta",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 duplicate email, got %d", st)
		}
		if !strings.Contains(string(body), "Correo ya registrado") {
			t.Fatalf("unexpected body: %s", string(body))
		}
	}

	// Sin TokenIssuer el login no puede emitir token => 500
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"correo":   "manolo@example.com",
			"password": "secreta",
		})
		if st != http.StatusInternalServerError {
			t.Fatalf("expected 500 login without issuer, got %d", st)
		}
	}

	// Clave mala => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"correo":   "manolo@example.com",
			"password": "otra",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad password, got %d", st)
		}
	}
}

func TestHTTP_RequiresIdentity(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// Sin identidad los handlers protegidos responden 401.
	st, _ := doReq(t, ts.URL, "GET", "/clients", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}
}

func createResource(t *testing.T, baseURL, path, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}
