package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gavel/internal/domain/geo"
	"gavel/internal/shared/config"
	"gavel/internal/shared/logger"
)

func newTestResolver(endpoint string) *IPAPIResolver {
	return NewIPAPIResolver(config.GeoIPConfig{
		Endpoint:       endpoint,
		TimeoutSeconds: 1,
	}, logger.NewLogger())
}

func TestIPAPIResolver_ResolveSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/8.8.8.8", r.URL.Path)
		assert.Equal(t, "status,country,regionName,city,isp", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","country":"United States","regionName":"California","city":"Mountain View","isp":"Google LLC"}`))
	}))
	defer server.Close()

	record := newTestResolver(server.URL).Resolve(context.Background(), "8.8.8.8")

	assert.Equal(t, "United States", record.Country)
	assert.Equal(t, "California", record.Region)
	assert.Equal(t, "Mountain View", record.City)
	assert.Equal(t, "Google LLC", record.ISP)
}

func TestIPAPIResolver_ResolvePartialFieldsNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","country":"Germany"}`))
	}))
	defer server.Close()

	record := newTestResolver(server.URL).Resolve(context.Background(), "1.2.3.4")

	// Missing fields fall back to the unknown placeholder.
	assert.Equal(t, "Germany", record.Country)
	assert.Equal(t, geo.Unknown, record.Region)
	assert.Equal(t, geo.Unknown, record.City)
	assert.Equal(t, geo.Unknown, record.ISP)
}

func TestIPAPIResolver_ResolveFailStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer server.Close()

	record := newTestResolver(server.URL).Resolve(context.Background(), "192.168.1.1")
	assert.True(t, record.IsDefault())
}

func TestIPAPIResolver_ResolveHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	record := newTestResolver(server.URL).Resolve(context.Background(), "8.8.8.8")
	assert.True(t, record.IsDefault())
}

func TestIPAPIResolver_ResolveUnreachable(t *testing.T) {
	// Nothing listens here; the resolver must degrade to defaults.
	record := newTestResolver("http://127.0.0.1:1").Resolve(context.Background(), "8.8.8.8")
	assert.True(t, record.IsDefault())
}

func TestIPAPIResolver_ResolveEmptyIP(t *testing.T) {
	record := newTestResolver("http://127.0.0.1:1").Resolve(context.Background(), "")
	assert.True(t, record.IsDefault())
}

func TestIPAPIResolver_ResolveTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	start := time.Now()
	record := newTestResolver(server.URL).Resolve(context.Background(), "8.8.8.8")

	assert.True(t, record.IsDefault())
	assert.Less(t, time.Since(start), 2*time.Second)
}
