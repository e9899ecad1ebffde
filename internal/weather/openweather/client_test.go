package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestDirectGeocodeRequest verifies the geocoding query string and response
// decoding.
func TestDirectGeocodeRequest(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"name":"Braila","local_names":{"ro":"Brăila"},"lat":45.27,"lon":27.96,"country":"RO"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), Config{APIKey: "test-key", BaseURL: srv.URL})

	candidates, err := client.DirectGeocode(context.Background(), "braila")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/geo/1.0/direct" {
		t.Errorf("expected path /geo/1.0/direct, got %s", gotPath)
	}
	if gotQuery != "appid=test-key&lang=ro&limit=5&q=braila" {
		t.Errorf("unexpected query string: %s", gotQuery)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].LocalNames["ro"] != "Brăila" {
		t.Errorf("expected localized name, got %q", candidates[0].LocalNames["ro"])
	}
}

// TestOneCallRequest verifies the forecast query string, including metric
// units and the Romanian locale.
func TestOneCallRequest(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"lat":45.27,"lon":27.96,"timezone":"Europe/Bucharest","current":{"temp":21.4}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), Config{APIKey: "test-key", BaseURL: srv.URL})

	oc, err := client.OneCall(context.Background(), 45.27, 27.96)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/data/3.0/onecall" {
		t.Errorf("expected path /data/3.0/onecall, got %s", gotPath)
	}
	if gotQuery != "appid=test-key&lang=ro&lat=45.27&lon=27.96&units=metric" {
		t.Errorf("unexpected query string: %s", gotQuery)
	}
	if oc.Timezone != "Europe/Bucharest" {
		t.Errorf("expected timezone Europe/Bucharest, got %q", oc.Timezone)
	}
	if oc.Current.Temp != 21.4 {
		t.Errorf("expected temp 21.4, got %v", oc.Current.Temp)
	}
}

// TestNon200BecomesStatusError verifies that an upstream error status surfaces
// as a StatusError carrying the code.
func TestNon200BecomesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), Config{APIKey: "bad-key", BaseURL: srv.URL})

	_, err := client.OneCall(context.Background(), 45.27, 27.96)
	if err == nil {
		t.Fatal("expected an error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", statusErr.StatusCode)
	}
}

// TestReverseGeocodeEmptyResult verifies that an empty candidate list is not
// an error.
func TestReverseGeocodeEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), Config{APIKey: "test-key", BaseURL: srv.URL})

	candidates, err := client.ReverseGeocode(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}
