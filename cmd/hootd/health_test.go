package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubNodeChecker fakes node RPC responses for handler tests
type stubNodeChecker struct {
	rpcErr  error
	syncing bool
	height  int64
	peers   int
}

func (s *stubNodeChecker) CheckRPC() error                 { return s.rpcErr }
func (s *stubNodeChecker) CheckSync() (bool, int64, error) { return s.syncing, s.height, nil }
func (s *stubNodeChecker) CheckConsensus() error           { return nil }
func (s *stubNodeChecker) GetPeerCount() (int, error)      { return s.peers, nil }
func (s *stubNodeChecker) GetBlockHeight() (int64, error)  { return s.height, nil }

func newTestHealthCheck(checker NodeHealthChecker) *HealthCheck {
	return &HealthCheck{
		nodeChecker: checker,
		cache:       newHealthCache(5 * time.Second),
	}
}

// TestHandleBasicHealth tests that liveness always reports ok
func TestHandleBasicHealth(t *testing.T) {
	hc := newTestHealthCheck(&stubNodeChecker{})

	rec := httptest.NewRecorder()
	hc.handleBasicHealth(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BasicHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
}

// TestHandleReadiness_Ready tests the happy path
func TestHandleReadiness_Ready(t *testing.T) {
	hc := newTestHealthCheck(&stubNodeChecker{height: 42})

	rec := httptest.NewRecorder()
	hc.handleReadiness(rec, httptest.NewRequest("GET", "/health/ready", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ready", resp.Status)
	require.Equal(t, "ok", resp.Checks["rpc"].Status)
	require.Equal(t, "ok", resp.Checks["sync"].Status)
}

// TestHandleReadiness_RPCDown tests that a dead RPC flips readiness
func TestHandleReadiness_RPCDown(t *testing.T) {
	hc := newTestHealthCheck(&stubNodeChecker{rpcErr: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	hc.handleReadiness(rec, httptest.NewRequest("GET", "/health/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "not_ready", resp.Status)
	require.Equal(t, "unhealthy", resp.Checks["rpc"].Status)
}

// TestHandleReadiness_Syncing tests that a catching-up node is not ready
func TestHandleReadiness_Syncing(t *testing.T) {
	hc := newTestHealthCheck(&stubNodeChecker{syncing: true, height: 10})

	rec := httptest.NewRecorder()
	hc.handleReadiness(rec, httptest.NewRequest("GET", "/health/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// TestHandleDetailed_CachesResult tests the response cache
func TestHandleDetailed_CachesResult(t *testing.T) {
	hc := newTestHealthCheck(&stubNodeChecker{height: 7, peers: 3})

	rec := httptest.NewRecorder()
	hc.handleDetailed(rec, httptest.NewRequest("GET", "/health/detailed", nil))
	require.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	var resp DetailedHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "healthy", resp.Status)
	require.Contains(t, resp.Modules, "quiz")
	require.Contains(t, resp.Modules, "compute")
	require.Equal(t, int64(7), resp.System.BlockHeight)

	rec = httptest.NewRecorder()
	hc.handleDetailed(rec, httptest.NewRequest("GET", "/health/detailed", nil))
	require.Equal(t, "HIT", rec.Header().Get("X-Cache"))
}
