package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"holiday-api/internal/testutil"
	mem "holiday-api/pkg/memcache"
	"holiday-api/pkg/utils"
)

func geocoder(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Query().Get("key") != "test-key" || r.URL.Query().Get("address") == "" {
			t.Errorf("Unexpected geocoding query %q", r.URL.RawQuery)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestGeocodingClient_IsAddressValid(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantValid bool
		wantErr   error
	}{
		{"resolved", http.StatusOK, `{"status":"OK","results":[{"place_id":"x"}]}`, true, nil},
		{"zero results", http.StatusOK, `{"status":"ZERO_RESULTS","results":[]}`, false, nil},
		{"ok without results", http.StatusOK, `{"status":"OK","results":[]}`, false, nil},
		{"server error", http.StatusInternalServerError, `oops`, false, utils.ErrLocationServiceUnavailable},
		{"garbage", http.StatusOK, `not json`, false, utils.ErrLocationServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := geocoder(t, tt.status, tt.body)
			client := NewGeocodingClient("test-key", srv.URL, nil, time.Minute)

			valid, err := client.IsAddressValid(context.Background(), "98000 Monaco, Monaco")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if valid != tt.wantValid {
				t.Errorf("Expected valid=%v, got %v", tt.wantValid, valid)
			}
		})
	}
}

func TestGeocodingClient_CachesAnswers(t *testing.T) {
	srv, hits := geocoder(t, http.StatusOK, `{"status":"OK","results":[{}]}`)
	client := NewGeocodingClient("test-key", srv.URL, mem.NewTTLCache[bool](), time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if ok, err := client.IsAddressValid(ctx, "98000 Monaco, Monaco"); err != nil || !ok {
			t.Fatalf("call %d: valid=%v err=%v", i, ok, err)
		}
	}
	if ok, _ := client.IsAddressValid(ctx, "  98000 MONACO, monaco "); !ok {
		t.Error("Expected the normalized address to hit the cache")
	}
	if got := atomic.LoadInt32(hits); got != 1 {
		t.Errorf("Expected a single upstream call, got %d", got)
	}
}

func TestValidateLocation(t *testing.T) {
	loc := testutil.NewLocation("Monaco", "Monaco", "98000")
	ctx := context.Background()

	if err := validateLocation(ctx, AcceptAllValidator{}, loc); err != nil {
		t.Errorf("AcceptAllValidator should accept, got %v", err)
	}
	if err := validateLocation(ctx, &stubValidator{valid: false}, loc); !errors.Is(err, utils.ErrInvalidAddress) {
		t.Errorf("Expected ErrInvalidAddress, got %v", err)
	}
	err := validateLocation(ctx, &stubValidator{err: errors.New("boom")}, loc)
	if !errors.Is(err, utils.ErrLocationServiceUnavailable) || !errors.Is(err, utils.ErrLocationValidation) {
		t.Errorf("Expected a location service error, got %v", err)
	}
}
