package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legitlah-be/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGateway_Call(t *testing.T) {
	var got bridgeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/call", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"result":  map[string]any{"isValid": true},
		})
	}))
	defer srv.Close()

	stats := &metrics.GatewayStats{}
	gw := NewHTTPGateway(srv.URL, "0xOrder", time.Second, stats)

	raw, err := gw.Call(context.Background(), "verifyCredentials", "0xaa", "0xbb")
	require.NoError(t, err)
	assert.JSONEq(t, `{"isValid":true}`, string(raw))

	assert.Equal(t, "0xOrder", got.Contract)
	assert.Equal(t, "verifyCredentials", got.Method)
	assert.Len(t, got.Args, 2)
	assert.Equal(t, uint64(1), stats.Calls.Load())
	assert.Equal(t, uint64(0), stats.Failures.Load())
}

func TestHTTPGateway_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send", r.URL.Path)
		var req bridgeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "0xABC", req.From)
		assert.Equal(t, uint64(300000), req.Gas)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"receipt": map[string]any{"txHash": "0xdead", "blockNumber": 7, "status": true},
		})
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL, "0xOrder", time.Second, nil)

	receipt, err := gw.Send(context.Background(), "updateTrackingNumber",
		[]any{"1", "TRK-1"}, TxOpts{From: "0xABC", Gas: 300000})
	require.NoError(t, err)
	assert.Equal(t, "0xdead", receipt.TxHash)
	assert.Equal(t, uint64(7), receipt.BlockNumber)
	assert.True(t, receipt.Status)
}

func TestHTTPGateway_SendMissingReceipt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL, "0xOrder", time.Second, nil)

	_, err := gw.Send(context.Background(), "updateTrackingNumber", nil, TxOpts{})
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "updateTrackingNumber", gwErr.Method)
}

func TestHTTPGateway_RemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "revert: order does not exist",
		})
	}))
	defer srv.Close()

	stats := &metrics.GatewayStats{}
	gw := NewHTTPGateway(srv.URL, "0xOrder", time.Second, stats)

	_, err := gw.Call(context.Background(), "getTrackingNumber", "999")
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusBadRequest, gwErr.Status)
	assert.Equal(t, "revert: order does not exist", gwErr.Message)
	assert.Equal(t, uint64(1), stats.Failures.Load())
}

func TestHTTPGateway_EnvelopeFailureWith200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "boom"})
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL, "0xOrder", time.Second, nil)

	_, err := gw.Call(context.Background(), "getOrderCount")
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "boom", gwErr.Message)
}

func TestHTTPGateway_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	stats := &metrics.GatewayStats{}
	gw := NewHTTPGateway(srv.URL, "0xOrder", 20*time.Millisecond, stats)

	_, err := gw.Call(context.Background(), "getOrderCount")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.Equal(t, uint64(1), stats.Failures.Load())
}

func TestHTTPGateway_Unreachable(t *testing.T) {
	gw := NewHTTPGateway("http://127.0.0.1:1", "0xOrder", 100*time.Millisecond, nil)

	_, err := gw.Call(context.Background(), "getOrderCount")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}
