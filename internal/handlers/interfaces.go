package handlers

import (
	"context"

	"delivery-pricing/internal/models"
)

// ----- Venue data -----

type VenueService interface {
	Fetch(ctx context.Context, venueSlug string) (*models.Venue, error)
}

// ----- Pricing -----

type PricingService interface {
	Price(cartValue int, user models.Coordinate, spec models.DeliverySpec, venue models.Coordinate) (*models.PriceBreakdown, error)
	Distance(user, venue models.Coordinate) (int, error)
}

// ----- Events -----

type EventProducer interface {
	PublishQuoteComputed(venueSlug string, breakdown *models.PriceBreakdown) error
	PublishQuoteRejected(venueSlug string, distance int, reason string) error
}

// ----- Health -----

type RedisHealth interface {
	Health(ctx context.Context) error
}
