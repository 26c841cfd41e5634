package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testClient(gtURL, btrURL string) *Client {
	return New(gtURL, btrURL, "secret", "pc", 2*time.Second, zap.NewNop().Sugar())
}

func TestGTPlayerAttachesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bf1/stats" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("name") != "player1" || q.Get("platform") != "pc" {
			t.Errorf("query = %v", q)
		}
		if q.Get("lang") != "zh-tw" {
			t.Errorf("bf1 should query zh-tw, got %q", q.Get("lang"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userName":"player1","kills":10}`))
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL, srv.URL).GTPlayer(context.Background(), "bf1", "stats", "player1")
	if err != nil {
		t.Fatal(err)
	}
	if code, _ := raw["code"].(float64); code != 200 {
		t.Errorf("code = %v", raw["code"])
	}
	if raw["userName"] != "player1" {
		t.Errorf("userName = %v", raw["userName"])
	}
}

func TestFetchGTNonSuccessStillDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":["Player not found"]}`))
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL, srv.URL).GTPlayer(context.Background(), "bf4", "stats", "ghost")
	if err != nil {
		t.Fatal(err)
	}
	if code, _ := raw["code"].(float64); code != 404 {
		t.Errorf("code = %v", raw["code"])
	}
	errs, ok := raw["errors"].([]any)
	if !ok || len(errs) != 1 {
		t.Errorf("errors = %v", raw["errors"])
	}
}

func TestFetchGTNullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL, srv.URL).GTPlayer(context.Background(), "bf4", "stats", "player1")
	if err != nil {
		t.Fatal(err)
	}
	if code, _ := raw["code"].(float64); code != 200 {
		t.Errorf("code = %v", raw["code"])
	}
	if len(raw) != 1 {
		t.Errorf("expected only the attached code, got %v", raw)
	}
}

func TestFetchBTRSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/player/stat" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("X-Api-Token") != "secret" {
			t.Errorf("missing token header")
		}
		q := r.URL.Query()
		if q.Get("player_name") != "p" || q.Get("game") != "bf2042" {
			t.Errorf("query = %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"segments":[]}`))
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL, srv.URL).FetchBTR(context.Background(), "/player/stat", "p", "bf2042")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["segments"]; !ok {
		t.Error("segments missing from decoded payload")
	}
}

func TestLookupEAID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userId":1004090}`))
	}))
	defer srv.Close()

	id, err := testClient(srv.URL, srv.URL).LookupEAID(context.Background(), "player1")
	if err != nil {
		t.Fatal(err)
	}
	if id != "1004090" {
		t.Errorf("id = %q", id)
	}
}

func TestLookupEAIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":["Player not found"]}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL, srv.URL).LookupEAID(context.Background(), "ghost"); err == nil {
		t.Fatal("expected error for unknown ea name")
	}
}
