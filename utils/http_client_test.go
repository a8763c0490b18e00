package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCreateFeedClient_BrowserHeaders(t *testing.T) {
	var gotUA, gotReferer, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	factory := NewHTTPClientFactory(5*time.Second, time.Second, time.Second, time.Second)
	client := factory.CreateFeedClient()

	resp, err := client.Get(server.URL + "/feed.xml")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("User-Agent = %q, want browser-like value", gotUA)
	}
	if gotReferer != server.URL+"/feed.xml" {
		t.Errorf("Referer = %q, want request URL", gotReferer)
	}
	if !strings.Contains(gotAccept, "application/xml") {
		t.Errorf("Accept = %q, want xml-capable value", gotAccept)
	}
}

func TestCreateFeedClient_FollowsRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("payload")); err != nil {
			t.Fatal(err)
		}
	}))
	defer target.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusMovedPermanently)
	}))
	defer redirecting.Close()

	factory := NewHTTPClientFactory(5*time.Second, time.Second, time.Second, time.Second)
	client := factory.CreateFeedClient()

	resp, err := client.Get(redirecting.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d after redirect", resp.StatusCode, http.StatusOK)
	}
}
