package venueapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"delivery-pricing/internal/apperror"
	"delivery-pricing/internal/config"
	"delivery-pricing/internal/logger"

	"delivery-pricing/internal/models"
)

// StaticPayload представляет статический ответ API заведения
type StaticPayload struct {
	VenueRaw struct {
		Location struct {
			// GeoJSON-порядок: [lon, lat]
			Coordinates []float64 `json:"coordinates"`
		} `json:"location"`
	} `json:"venue_raw"`
}

// DynamicPayload представляет динамический ответ API заведения
type DynamicPayload struct {
	VenueRaw struct {
		DeliverySpecs struct {
			OrderMinimumNoSurcharge int `json:"order_minimum_no_surcharge"`
			DeliveryPricing         struct {
				BasePrice      int                    `json:"base_price"`
				DistanceRanges []models.DistanceRange `json:"distance_ranges"`
			} `json:"delivery_pricing"`
		} `json:"delivery_specs"`
	} `json:"venue_raw"`
}

// Client выполняет запросы к внешнему API данных о заведениях.
// Один запрос — одна попытка, без ретраев.
type Client struct {
	client *http.Client
	log    *logger.Logger
}

// NewClient создает клиент внешнего API с таймаутом из конфигурации
func NewClient(cfg *config.VenueAPIConfig, log *logger.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// FetchStatic получает статические данные заведения
func (c *Client) FetchStatic(ctx context.Context, baseURL, slug string) (*StaticPayload, error) {
	var payload StaticPayload
	url := fmt.Sprintf("%s/home-assignment-api/v1/venues/%s/static", baseURL, slug)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchDynamic получает динамические данные заведения
func (c *Client) FetchDynamic(ctx context.Context, baseURL, slug string) (*DynamicPayload, error) {
	var payload DynamicPayload
	url := fmt.Sprintf("%s/home-assignment-api/v1/venues/%s/dynamic", baseURL, slug)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// getJSON выполняет GET и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperror.Upstream("failed to build venue api request", err)
	}

	c.log.WithField("url", url).Debug("Fetching venue data")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperror.Upstream("venue api request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperror.Upstream(
			fmt.Sprintf("venue api returned status %d", resp.StatusCode),
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return apperror.MalformedSpec("failed to decode venue api response", err)
	}

	return nil
}
