package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"delivery-pricing/internal/apperror"
	"delivery-pricing/internal/logger"
	"delivery-pricing/internal/models"
)

// PriceHandler представляет обработчик расчёта цены доставки
type PriceHandler struct {
	venues   VenueService
	pricing  PricingService
	producer EventProducer
	log      *logger.Logger
}

// NewPriceHandler создает новый обработчик расчёта цены
func NewPriceHandler(venues VenueService, pricing PricingService, producer EventProducer, log *logger.Logger) *PriceHandler {
	return &PriceHandler{
		venues:   venues,
		pricing:  pricing,
		producer: producer,
		log:      log,
	}
}

type priceQuery struct {
	venueSlug string
	cartValue int
	user      models.Coordinate
}

// GetDeliveryOrderPrice рассчитывает цену заказа с доставкой
func (h *PriceHandler) GetDeliveryOrderPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	query, err := parsePriceQuery(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	venue, err := h.venues.Fetch(r.Context(), query.venueSlug)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to resolve venue")
		return
	}

	breakdown, err := h.pricing.Price(query.cartValue, query.user, venue.DeliverySpec, venue.Location)
	if err != nil {
		if apperror.Is(err, apperror.KindUndeliverable) {
			h.publishRejected(query, venue, err)
		}
		writeServiceError(w, h.log, err, "Failed to compute delivery price")
		return
	}

	// Публикация события в Kafka; ошибка не возвращается клиенту
	if h.producer != nil {
		if err := h.producer.PublishQuoteComputed(query.venueSlug, breakdown); err != nil {
			h.log.WithError(err).Error("Failed to publish quote computed event")
		}
	}

	h.log.WithFields(map[string]interface{}{
		"venue_slug":  query.venueSlug,
		"cart_value":  query.cartValue,
		"distance":    breakdown.Delivery.Distance,
		"total_price": breakdown.TotalPrice,
	}).Info("Delivery price computed")

	writeJSONResponse(w, http.StatusOK, breakdown)
}

func (h *PriceHandler) publishRejected(query priceQuery, venue *models.Venue, cause error) {
	if h.producer == nil {
		return
	}

	distance, err := h.pricing.Distance(query.user, venue.Location)
	if err != nil {
		distance = 0
	}

	if err := h.producer.PublishQuoteRejected(query.venueSlug, distance, cause.Error()); err != nil {
		h.log.WithError(err).Error("Failed to publish quote rejected event")
	}
}

// parsePriceQuery валидирует параметры запроса расчёта цены
func parsePriceQuery(r *http.Request) (priceQuery, error) {
	values := r.URL.Query()

	slug := strings.TrimSpace(values.Get("venue_slug"))
	if slug == "" {
		return priceQuery{}, fmt.Errorf("venue_slug is required")
	}

	cartRaw := values.Get("cart_value")
	if cartRaw == "" {
		return priceQuery{}, fmt.Errorf("cart_value is required")
	}
	cartValue, err := strconv.Atoi(cartRaw)
	if err != nil {
		return priceQuery{}, fmt.Errorf("cart_value must be an integer")
	}
	if cartValue < 0 {
		return priceQuery{}, fmt.Errorf("cart_value cannot be negative")
	}

	lat, err := parseCoordinateParam(values.Get("user_lat"), "user_lat", -90, 90)
	if err != nil {
		return priceQuery{}, err
	}

	lon, err := parseCoordinateParam(values.Get("user_lon"), "user_lon", -180, 180)
	if err != nil {
		return priceQuery{}, err
	}

	return priceQuery{
		venueSlug: slug,
		cartValue: cartValue,
		user:      models.Coordinate{Lat: lat, Lon: lon},
	}, nil
}

func parseCoordinateParam(raw, name string, min, max float64) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}

	// ParseFloat принимает "NaN" и "Inf" — такие значения отклоняем
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s must be a finite number", name)
	}

	if value < min || value > max {
		return 0, fmt.Errorf("%s must be between %g and %g", name, min, max)
	}

	return value, nil
}
