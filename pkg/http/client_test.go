package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serve(t *testing.T, contentType string, body []byte) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return NewHttpClient(server.URL, ClientOptions{})
}

type place struct {
	Name string `json:"name" xml:"name"`
}

func TestLatin1JSONIsDecoded(t *testing.T) {
	// "São Paulo" in ISO-8859-1
	body := []byte("{\"name\":\"S\xe3o Paulo\"}")
	client := serve(t, "application/json; charset=ISO-8859-1", body)

	var got place
	if _, _, status, err := client.Request().WithPath("/place").WithSuccessResp(&got).Execute(); err != nil || status != http.StatusOK {
		t.Fatalf("unexpected status %d err=%v", status, err)
	}
	if got.Name != "São Paulo" {
		t.Errorf("expected São Paulo, got %q", got.Name)
	}
}

func TestUTF8JSONIsUntouched(t *testing.T) {
	client := serve(t, "application/json; charset=utf-8", []byte(`{"name":"Zürich"}`))

	var got place
	if _, _, _, err := client.Request().WithSuccessResp(&got).Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Zürich" {
		t.Errorf("expected Zürich, got %q", got.Name)
	}
}

func TestUnknownCharsetFails(t *testing.T) {
	client := serve(t, "application/json; charset=x-unknown", []byte(`{"name":"Lima"}`))

	var got place
	if _, _, _, err := client.Request().WithSuccessResp(&got).Execute(); err == nil {
		t.Error("expected an error for an unknown charset")
	}
}

func TestLatin1XMLIsDecoded(t *testing.T) {
	body := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><place><name>Bogot\xe1</name></place>")
	client := serve(t, "text/xml", body)

	var got place
	if _, _, _, err := client.Request().WithSuccessResp(&got).Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Bogotá" {
		t.Errorf("expected Bogotá, got %q", got.Name)
	}
}
