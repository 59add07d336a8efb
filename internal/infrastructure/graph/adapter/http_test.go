package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPGateway_FetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v18.0/user42" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("fields"); got != "name,profile_pic" {
			t.Errorf("unexpected fields %q", got)
		}
		if got := r.URL.Query().Get("access_token"); got != "tok" {
			t.Errorf("unexpected token %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"name": "Jane Roe", "profile_pic": "http://pic"})
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, "v18.0", time.Second)
	p, err := g.FetchProfile(context.Background(), "user42", "tok")
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
	if p.Name != "Jane Roe" || p.PictureURL != "http://pic" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestHTTPGateway_SendMessage(t *testing.T) {
	var gotBody sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v18.0/page1/messages" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, "v18.0", time.Second)
	if err := g.SendMessage(context.Background(), "page1", "user42", "hello", "tok"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if gotBody.Recipient.ID != "user42" || gotBody.Message.Text != "hello" {
		t.Fatalf("unexpected payload %+v", gotBody)
	}
}

func TestHTTPGateway_SendMessageErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad token"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, "v18.0", time.Second)
	if err := g.SendMessage(context.Background(), "page1", "user42", "hello", "tok"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestHTTPGateway_SubscribePageVersionless(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/page1/subscribed_apps" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, "v18.0", time.Second)
	if err := g.SubscribePage(context.Background(), "page1", "tok"); err != nil {
		t.Fatalf("SubscribePage: %v", err)
	}
}
