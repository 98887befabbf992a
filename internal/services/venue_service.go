package services

import (
	"context"
	"fmt"
	"strings"

	"delivery-pricing/internal/apperror"
	"delivery-pricing/internal/config"
	"delivery-pricing/internal/logger"
	"delivery-pricing/internal/models"
	"delivery-pricing/internal/venueapi"
)

// venueFetcher описывает контракт клиента внешнего API (подменяемый в тестах)
type venueFetcher interface {
	FetchStatic(ctx context.Context, baseURL, slug string) (*venueapi.StaticPayload, error)
	FetchDynamic(ctx context.Context, baseURL, slug string) (*venueapi.DynamicPayload, error)
}

// VenueService разрешает слаг заведения в страну и endpoint'ы API,
// запрашивает статические и динамические данные и собирает модель заведения.
// Данные запрашиваются заново на каждый запрос, без кеширования.
type VenueService struct {
	api venueFetcher
	cfg *config.VenueAPIConfig
	log *logger.Logger
}

// NewVenueService создаёт сервис данных о заведениях
func NewVenueService(api *venueapi.Client, cfg *config.VenueAPIConfig, log *logger.Logger) *VenueService {
	return &VenueService{
		api: api,
		cfg: cfg,
		log: log,
	}
}

// ResolveCountry определяет код страны по слагу заведения.
// Город — последний сегмент слага после дефиса.
func (s *VenueService) ResolveCountry(venueSlug string) (string, error) {
	if venueSlug == "" {
		return "", apperror.Validation("venue_slug must be a non-empty string", nil)
	}

	parts := strings.Split(venueSlug, "-")
	city := strings.ToLower(parts[len(parts)-1])

	country, ok := s.cfg.CityCountries[city]
	if !ok {
		return "", apperror.Validation(fmt.Sprintf("invalid venue city extracted from slug: %s", city), nil)
	}

	s.log.WithFields(map[string]interface{}{
		"venue_slug": venueSlug,
		"city":       city,
		"country":    country,
	}).Debug("Venue country resolved")

	return country, nil
}

// Fetch получает данные заведения: статический и динамический ответы
// запрашиваются параллельно, оба обязательны
func (s *VenueService) Fetch(ctx context.Context, venueSlug string) (*models.Venue, error) {
	country, err := s.ResolveCountry(venueSlug)
	if err != nil {
		return nil, err
	}
	baseURL := s.cfg.BaseURLFor(country)

	type staticResult struct {
		payload *venueapi.StaticPayload
		err     error
	}
	type dynamicResult struct {
		payload *venueapi.DynamicPayload
		err     error
	}

	staticCh := make(chan staticResult, 1)
	dynamicCh := make(chan dynamicResult, 1)

	go func() {
		p, err := s.api.FetchStatic(ctx, baseURL, venueSlug)
		staticCh <- staticResult{payload: p, err: err}
	}()
	go func() {
		p, err := s.api.FetchDynamic(ctx, baseURL, venueSlug)
		dynamicCh <- dynamicResult{payload: p, err: err}
	}()

	st := <-staticCh
	if st.err != nil {
		return nil, fmt.Errorf("failed to fetch static venue data: %w", st.err)
	}
	dyn := <-dynamicCh
	if dyn.err != nil {
		return nil, fmt.Errorf("failed to fetch dynamic venue data: %w", dyn.err)
	}

	location, err := extractLocation(st.payload)
	if err != nil {
		return nil, err
	}
	spec, err := extractDeliverySpec(dyn.payload)
	if err != nil {
		return nil, err
	}

	return &models.Venue{
		Slug:         venueSlug,
		Country:      country,
		Location:     location,
		DeliverySpec: spec,
	}, nil
}

// extractLocation достаёт координаты заведения из статического ответа
func extractLocation(payload *venueapi.StaticPayload) (models.Coordinate, error) {
	coords := payload.VenueRaw.Location.Coordinates
	if len(coords) < 2 {
		return models.Coordinate{}, apperror.MalformedSpec("static venue data is missing coordinates", nil)
	}

	location := models.Coordinate{Lon: coords[0], Lat: coords[1]}
	if !location.Valid() {
		return models.Coordinate{}, apperror.MalformedSpec(
			fmt.Sprintf("venue coordinates out of range: lat=%f lon=%f", location.Lat, location.Lon), nil)
	}
	return location, nil
}

// extractDeliverySpec достаёт параметры доставки из динамического ответа
func extractDeliverySpec(payload *venueapi.DynamicPayload) (models.DeliverySpec, error) {
	specs := payload.VenueRaw.DeliverySpecs
	if len(specs.DeliveryPricing.DistanceRanges) == 0 {
		return models.DeliverySpec{}, apperror.MalformedSpec("dynamic venue data has no distance ranges", nil)
	}

	return models.DeliverySpec{
		OrderMinimumNoSurcharge: specs.OrderMinimumNoSurcharge,
		BasePrice:               specs.DeliveryPricing.BasePrice,
		DistanceRanges:          specs.DeliveryPricing.DistanceRanges,
	}, nil
}
