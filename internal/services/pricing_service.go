package services

import (
	"delivery-pricing/internal/logger"
	"delivery-pricing/internal/models"
)

// PricingService рассчитывает итоговую цену заказа с детализацией
type PricingService struct {
	distance *DistanceService
	log      *logger.Logger
}

// NewPricingService создаёт сервис расчёта цены
func NewPricingService(distance *DistanceService, log *logger.Logger) *PricingService {
	return &PricingService{
		distance: distance,
		log:      log,
	}
}

// Price — единая точка входа: расстояние пользователь-заведение,
// тариф по диапазону, надбавка за маленький заказ и итоговая цена
func (s *PricingService) Price(cartValue int, user models.Coordinate, spec models.DeliverySpec, venue models.Coordinate) (*models.PriceBreakdown, error) {
	distance, err := s.distance.Distance(user, venue)
	if err != nil {
		return nil, err
	}
	return s.Compute(cartValue, distance, spec)
}

// Distance возвращает расстояние пользователь-заведение в метрах
func (s *PricingService) Distance(user, venue models.Coordinate) (int, error) {
	return s.distance.Distance(user, venue)
}

// Compute собирает детализацию цены для уже известного расстояния.
// Денежные поля усекаются до целых при построении ответа, не округляются.
func (s *PricingService) Compute(cartValue, distance int, spec models.DeliverySpec) (*models.PriceBreakdown, error) {
	a, b, err := ResolveFeeRange(distance, spec.DistanceRanges)
	if err != nil {
		return nil, err
	}

	surcharge := spec.OrderMinimumNoSurcharge - cartValue
	if surcharge < 0 {
		surcharge = 0
	}

	// Коэффициент b задан во внешнем контракте в единицах на 10 метров
	fee := float64(a) + float64(b)*float64(distance)/10.0 + float64(spec.BasePrice)
	total := float64(cartValue) + float64(surcharge) + fee

	breakdown := &models.PriceBreakdown{
		TotalPrice:          int(total),
		SmallOrderSurcharge: surcharge,
		CartValue:           cartValue,
		Delivery: models.Delivery{
			Fee:      int(fee),
			Distance: distance,
		},
	}

	s.log.WithFields(map[string]interface{}{
		"cart_value":  cartValue,
		"distance":    distance,
		"fee":         breakdown.Delivery.Fee,
		"total_price": breakdown.TotalPrice,
	}).Debug("Price computed")

	return breakdown, nil
}
