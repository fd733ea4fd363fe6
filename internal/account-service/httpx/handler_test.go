package httpx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ravelar/storefront/internal/account-service/app"
	"github.com/ravelar/storefront/internal/account-service/domain"
	"github.com/ravelar/storefront/internal/account-service/httpx"
	"github.com/ravelar/storefront/internal/pkg/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	accounts := store.NewMemory[domain.Account]()
	if err := app.SeedDemoData(context.Background(), accounts); err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}

	srv := httptest.NewServer(httpx.NewRouter(httpx.NewHandler(accounts)))
	t.Cleanup(srv.Close)
	return srv
}

func TestListAccountsHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/accounts")
	if err != nil {
		t.Fatalf("GET /accounts: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Data []domain.Account `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data) != 3 || out.Data[0].Name != "Alice" {
		t.Fatalf("accounts = %+v, want the three seeds", out.Data)
	}
}

func TestGetAccountByIDHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/accounts/2")
	if err != nil {
		t.Fatalf("GET /accounts/2: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Data domain.Account `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Data.Name != "Bob" {
		t.Errorf("account = %+v, want Bob", out.Data)
	}

	missing, err := http.Get(srv.URL + "/accounts/99")
	if err != nil {
		t.Fatalf("GET /accounts/99: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("missing account status = %d, want 404", missing.StatusCode)
	}
}

func TestCreateAccountHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/accounts", "application/json",
		strings.NewReader(`{"name": "Dora", "email": "dora@example.com"}`))
	if err != nil {
		t.Fatalf("POST /accounts: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var out struct {
		Data domain.Account `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Data.ID != 4 {
		t.Errorf("new account id = %d, want 4 (after three seeds)", out.Data.ID)
	}

	bad, err := http.Post(srv.URL+"/accounts", "application/json",
		strings.NewReader(`{"name": "", "email": ""}`))
	if err != nil {
		t.Fatalf("POST invalid account: %v", err)
	}
	defer bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid account status = %d, want 400", bad.StatusCode)
	}
}
