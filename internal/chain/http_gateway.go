package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"legitlah-be/internal/logger"
	"legitlah-be/internal/metrics"

	"go.uber.org/zap"
)

// httpGateway talks to a contract bridge over HTTP JSON. The bridge owns
// all blockchain specifics (network, ABI, gas estimation); this side only
// names a method, passes arguments and decodes the result.
type httpGateway struct {
	baseURL    string
	contract   string
	httpClient *http.Client
	stats      *metrics.GatewayStats
}

type bridgeRequest struct {
	Contract string `json:"contract"`
	Method   string `json:"method"`
	Args     []any  `json:"args"`
	From     string `json:"from,omitempty"`
	Gas      uint64 `json:"gas,omitempty"`
}

type bridgeResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Receipt *Receipt        `json:"receipt,omitempty"`
}

// NewHTTPGateway builds a gateway for one contract address. The timeout
// bounds every call; a bridge that hangs surfaces ErrGatewayUnavailable
// instead of blocking the request forever.
func NewHTTPGateway(baseURL, contract string, timeout time.Duration, stats *metrics.GatewayStats) Gateway {
	if baseURL == "" {
		logger.L().Warn("contract bridge URL is empty")
	}
	if stats == nil {
		stats = &metrics.GatewayStats{}
	}

	return &httpGateway{
		baseURL:  baseURL,
		contract: contract,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		stats: stats,
	}
}

func (g *httpGateway) Call(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	g.stats.Calls.Inc()
	if args == nil {
		args = []any{}
	}
	res, err := g.post(ctx, "/call", bridgeRequest{
		Contract: g.contract,
		Method:   method,
		Args:     args,
	}, method)
	if err != nil {
		return nil, err
	}
	return res.Result, nil
}

func (g *httpGateway) Send(ctx context.Context, method string, args []any, opts TxOpts) (*Receipt, error) {
	g.stats.Sends.Inc()
	if args == nil {
		args = []any{}
	}
	res, err := g.post(ctx, "/send", bridgeRequest{
		Contract: g.contract,
		Method:   method,
		Args:     args,
		From:     opts.From,
		Gas:      opts.Gas,
	}, method)
	if err != nil {
		return nil, err
	}
	if res.Receipt == nil {
		g.stats.Failures.Inc()
		return nil, &GatewayError{Method: method, Status: http.StatusOK, Message: "missing transaction receipt"}
	}
	return res.Receipt, nil
}

func (g *httpGateway) post(ctx context.Context, path string, body bridgeRequest, method string) (*bridgeResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("contract", g.contract),
		zap.String("method", method),
	)
	timer := metrics.StartTimer()

	jsonBody, err := json.Marshal(body)
	if err != nil {
		g.stats.Failures.Inc()
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		g.stats.Failures.Inc()
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.stats.Failures.Inc()
		log.Error("bridge request failed", zap.Error(err), zap.Duration("elapsed", timer.Duration()))
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		g.stats.Failures.Inc()
		return nil, fmt.Errorf("%w: reading response: %v", ErrGatewayUnavailable, err)
	}

	var res bridgeResponse
	if len(bodyBytes) > 0 {
		// a non-JSON error page still maps to a GatewayError below
		_ = json.Unmarshal(bodyBytes, &res)
	}

	if resp.StatusCode != http.StatusOK || !res.Success {
		g.stats.Failures.Inc()
		msg := res.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		log.Error("bridge returned failure",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return nil, &GatewayError{Method: method, Status: resp.StatusCode, Message: msg}
	}

	log.Debug("bridge call completed", zap.Duration("elapsed", timer.Duration()))
	return &res, nil
}
