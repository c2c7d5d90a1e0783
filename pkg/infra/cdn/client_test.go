package cdn_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/gedphotos/gedphotos/pkg/infra/cdn"
)

func TestClient_Fetch_Success(t *testing.T) {
	body := []byte("fake image bytes")
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "image/jpeg")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}))
	defer server.Close()

	client := cdn.NewClient(cdn.WithUserAgent("gedphotos-test"))

	data, contentType, err := client.Fetch(context.Background(), server.URL+"/photo.jpg")
	gt.NoError(t, err)
	gt.Value(t, data).Equal(body)
	gt.Value(t, contentType).Equal("image/jpeg")
	gt.Value(t, gotUA).Equal("gedphotos-test")
}

func TestClient_Fetch_ExpiredLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := cdn.NewClient()

	data, _, err := client.Fetch(context.Background(), server.URL+"/expired.jpg")
	gt.Error(t, err)
	gt.Value(t, data).Nil()
	gt.String(t, err.Error()).Contains("unexpected status code")
}

func TestClient_Fetch_ConnectionError(t *testing.T) {
	// Closed server to force a connection failure
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := cdn.NewClient()

	_, _, err := client.Fetch(context.Background(), url+"/photo.jpg")
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to download photo")
}

func TestClient_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := cdn.NewClient()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := client.Fetch(ctx, server.URL+"/photo.jpg")
	gt.Error(t, err)
}
