package models

// Coordinate представляет географическую точку в градусах
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid проверяет, что координата лежит в допустимых пределах
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// DistanceRange представляет тариф для диапазона расстояний.
// Max == 0 — маркер последнего "безграничного" диапазона: доставка за его
// пределами невозможна. Это соглашение внешнего API, не буквальный ноль.
type DistanceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
	A   int `json:"a"`
	B   int `json:"b"`
}

// DeliverySpec представляет параметры доставки заведения
type DeliverySpec struct {
	OrderMinimumNoSurcharge int             `json:"order_minimum_no_surcharge"`
	BasePrice               int             `json:"base_price"`
	DistanceRanges          []DistanceRange `json:"distance_ranges"`
}

// Venue представляет заведение: координаты и параметры доставки,
// извлечённые из статического и динамического ответов внешнего API
type Venue struct {
	Slug         string       `json:"slug"`
	Country      string       `json:"country"`
	Location     Coordinate   `json:"location"`
	DeliverySpec DeliverySpec `json:"delivery_spec"`
}

// Delivery представляет блок доставки в ответе
type Delivery struct {
	Fee      int `json:"fee"`
	Distance int `json:"distance"`
}

// PriceBreakdown представляет итоговую детализацию цены заказа.
// Все суммы в минимальных единицах валюты, расстояние в метрах.
type PriceBreakdown struct {
	TotalPrice          int      `json:"total_price"`
	SmallOrderSurcharge int      `json:"small_order_surcharge"`
	CartValue           int      `json:"cart_value"`
	Delivery            Delivery `json:"delivery"`
}
