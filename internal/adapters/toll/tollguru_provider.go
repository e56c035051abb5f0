package toll

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/platform/obs"
)

// vehicleClasses maps domain vehicle types to the provider's axle-based
// vehicle taxonomy.
var vehicleClasses = map[domain.VehicleType]string{
	domain.VehicleCar:   "2AxlesAuto",
	domain.VehicleBike:  "2AxlesMotorcycle",
	domain.VehicleTaxi:  "2AxlesTaxi",
	domain.VehicleLCV:   "2AxlesLCV",
	domain.VehicleTruck: "2AxlesTruck",
	domain.VehicleBus:   "2AxlesBus",
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// TollGuruProvider fetches per-booth toll pricing from the TollGuru
// origin-destination API.
type TollGuruProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewTollGuruProvider(apiKey string) (*TollGuruProvider, error) {
	if apiKey == "" {
		return nil, errors.New("TollGuru api key is empty")
	}

	return &TollGuruProvider{
		session: &http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://apis.tollguru.com",
	}, nil
}

type tollRequest struct {
	From        tollEndpoint `json:"from"`
	To          tollEndpoint `json:"to"`
	VehicleType string       `json:"vehicleType"`
}

type tollEndpoint struct {
	Address string `json:"address"`
}

type tollResponse struct {
	Routes []struct {
		Tolls []struct {
			Name        string  `json:"name"`
			City        string  `json:"city"`
			Lat         float64 `json:"lat"`
			Lng         float64 `json:"lng"`
			CashCost    float64 `json:"cashCost"`
			TagCost     float64 `json:"tagCost"`
			ReturnCost  float64 `json:"returnCost"`
			MonthlyCost float64 `json:"monthlyCost"`
		} `json:"tolls"`
	} `json:"routes"`
}

// GetTollCost prices every booth on the primary route between two
// addresses. Per booth the tag (FASTag) price wins over cash when both
// are present.
func (p *TollGuruProvider) GetTollCost(ctx context.Context, origin, destination string, vehicle domain.VehicleType) (_ *domain.TollResult, err error) {
	defer obs.Time(ctx, "toll.GetTollCost")(&err)

	class, ok := vehicleClasses[vehicle]
	if !ok {
		return nil, fmt.Errorf("toll: unsupported vehicle type %q", vehicle)
	}

	body, err := json.Marshal(tollRequest{
		From:        tollEndpoint{Address: origin},
		To:          tollEndpoint{Address: destination},
		VehicleType: class,
	})
	if err != nil {
		return nil, fmt.Errorf("toll: encode request: %w", err)
	}

	var tr tollResponse
	if err := p.postJSON(ctx, p.baseURL+"/toll/v2/origin-destination-waypoints", body, &tr); err != nil {
		return nil, fmt.Errorf("toll %q -> %q: %w", origin, destination, err)
	}
	if len(tr.Routes) == 0 {
		return nil, fmt.Errorf("toll %q -> %q: no routes in response", origin, destination)
	}

	result := &domain.TollResult{VehicleType: vehicle}
	for _, t := range tr.Routes[0].Tolls {
		cost := t.CashCost
		if t.TagCost > 0 {
			cost = t.TagCost
		}

		booth := domain.TollBooth{
			Name: t.Name,
			City: t.City,
			Cost: cost,
			Prices: domain.TollPrices{
				Cash:    t.CashCost,
				Tag:     t.TagCost,
				Return:  t.ReturnCost,
				Monthly: t.MonthlyCost,
			},
			PaymentMethods: paymentMethods(t.CashCost, t.TagCost),
		}
		if t.Lat != 0 || t.Lng != 0 {
			booth.Location = &domain.Coordinates{Lat: t.Lat, Lon: t.Lng}
			booth.MapsURL = fmt.Sprintf("https://www.google.com/maps?q=%f,%f", t.Lat, t.Lng)
		}

		result.Booths = append(result.Booths, booth)
		result.TotalCost += cost
	}
	result.BoothCount = len(result.Booths)

	return result, nil
}

func paymentMethods(cash, tag float64) []string {
	var methods []string
	if tag > 0 {
		methods = append(methods, "FASTag")
	}
	if cash > 0 {
		methods = append(methods, "Cash")
	}
	return methods
}

func (p *TollGuruProvider) postJSON(ctx context.Context, endpoint string, body []byte, out any) error {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", p.apiKey)

		resp, err := p.session.Do(req)
		if err == nil && resp.StatusCode >= 400 {
			b, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			err = &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
		}
		if err == nil {
			decodeErr := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if decodeErr != nil {
				return fmt.Errorf("decode response: %w", decodeErr)
			}
			return nil
		}
		lastErr = err

		if !retryable(err) || attempt == maxAttempts {
			return lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return lastErr
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
