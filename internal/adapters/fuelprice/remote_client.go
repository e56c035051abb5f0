package fuelprice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roadtrip-planner-service/internal/ports"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// RemoteClient fetches live pump prices from an external price API keyed
// by state name.
type RemoteClient struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewRemoteClient(baseURL, apiKey string) (*RemoteClient, error) {
	if baseURL == "" {
		return nil, errors.New("fuel price api url is empty")
	}

	return &RemoteClient{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}, nil
}

type priceResponse struct {
	State  string  `json:"state"`
	Petrol float64 `json:"petrol"`
	Diesel float64 `json:"diesel"`
}

// GetFuelPrices returns live prices for a region, or an error the caller
// is expected to recover from with the fallback table.
func (c *RemoteClient) GetFuelPrices(ctx context.Context, region string) (ports.FuelPrices, error) {
	if region == "" {
		return ports.FuelPrices{}, errors.New("fuel prices: empty region")
	}

	params := url.Values{}
	params.Set("state", region)
	full := c.baseURL + "/prices?" + params.Encode()

	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return ports.FuelPrices{}, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
		if err != nil {
			return ports.FuelPrices{}, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("x-api-key", c.apiKey)
		}

		resp, err := c.session.Do(req)
		if err == nil && resp.StatusCode >= 400 {
			b, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			err = &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
		}
		if err == nil {
			var pr priceResponse
			decodeErr := json.NewDecoder(resp.Body).Decode(&pr)
			resp.Body.Close()
			if decodeErr != nil {
				return ports.FuelPrices{}, fmt.Errorf("decode response: %w", decodeErr)
			}
			if pr.Petrol <= 0 && pr.Diesel <= 0 {
				return ports.FuelPrices{}, fmt.Errorf("fuel prices for %q: no prices in response", region)
			}
			return ports.FuelPrices{
				PetrolPerLiter: pr.Petrol,
				DieselPerLiter: pr.Diesel,
				Source:         "Live Prices",
			}, nil
		}
		lastErr = err

		if !retryable(err) || attempt == maxAttempts {
			return ports.FuelPrices{}, fmt.Errorf("fuel prices for %q: %w", region, lastErr)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ports.FuelPrices{}, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return ports.FuelPrices{}, fmt.Errorf("fuel prices for %q: %w", region, lastErr)
}

func retryable(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case 429, 500, 502, 503, 504:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
