package services

import (
	"fmt"
	"math"

	"delivery-pricing/internal/apperror"
	"delivery-pricing/internal/config"
	"delivery-pricing/internal/logger"
	"delivery-pricing/internal/models"
)

// DistanceMethod определяет алгоритм расчёта расстояния
type DistanceMethod string

const (
	// DistanceMethodPlanar — плоское приближение через теорему Пифагора
	DistanceMethodPlanar DistanceMethod = "planar"
	// DistanceMethodHaversine — формула гаверсинусов по большому кругу
	DistanceMethodHaversine DistanceMethod = "haversine"
)

const (
	earthRadiusMeters = 6371000.0
	kmPerDegree       = 111.32
)

// DistanceService рассчитывает расстояние между пользователем и заведением
type DistanceService struct {
	method DistanceMethod
	log    *logger.Logger
}

// NewDistanceService создаёт сервис с методом из конфигурации
func NewDistanceService(cfg *config.PricingConfig, log *logger.Logger) *DistanceService {
	return &DistanceService{
		method: DistanceMethod(cfg.DistanceMethod),
		log:    log,
	}
}

// Distance возвращает расстояние в метрах между двумя точками
func (s *DistanceService) Distance(user, venue models.Coordinate) (int, error) {
	distance, err := CalculateDistance(user, venue, s.method)
	if err != nil {
		return 0, err
	}

	s.log.WithFields(map[string]interface{}{
		"method":   string(s.method),
		"distance": distance,
	}).Debug("Distance calculated")

	return distance, nil
}

// CalculateDistance — чистая функция расчёта расстояния в метрах.
// Неизвестный метод — ошибка, без молчаливого фолбэка.
func CalculateDistance(user, venue models.Coordinate, method DistanceMethod) (int, error) {
	if !finiteCoordinate(user) || !finiteCoordinate(venue) {
		return 0, apperror.Computation("coordinates must be finite numbers", nil)
	}

	switch method {
	case DistanceMethodPlanar:
		return planarMeters(user, venue), nil
	case DistanceMethodHaversine:
		return haversineMeters(user, venue), nil
	default:
		return 0, apperror.InvalidMethod(
			fmt.Sprintf("invalid distance calculation method: %q, use %q or %q", method, DistanceMethodPlanar, DistanceMethodHaversine),
			nil,
		)
	}
}

// planarMeters переводит дельты градусов в километры (111.32 км на градус),
// корректирует долготу на cos широты пользователя и берёт евклидову норму
func planarMeters(user, venue models.Coordinate) int {
	deltaLat := venue.Lat - user.Lat
	deltaLon := venue.Lon - user.Lon

	yKm := deltaLat * kmPerDegree
	xKm := deltaLon * kmPerDegree * math.Cos(degreesToRadians(user.Lat))

	distanceKm := math.Sqrt(xKm*xKm + yKm*yKm)
	return int(math.Round(distanceKm * 1000))
}

// haversineMeters считает расстояние по большому кругу
func haversineMeters(user, venue models.Coordinate) int {
	lat1 := degreesToRadians(user.Lat)
	lat2 := degreesToRadians(venue.Lat)
	deltaLat := degreesToRadians(venue.Lat - user.Lat)
	deltaLon := degreesToRadians(venue.Lon - user.Lon)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusMeters * c))
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func finiteCoordinate(c models.Coordinate) bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lon) && !math.IsInf(c.Lon, 0)
}
