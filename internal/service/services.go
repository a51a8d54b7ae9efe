package service

import (
	"cinetix/internal/config"
	postgres "cinetix/internal/repository/postgres"
	redis "cinetix/internal/repository/redis"
	"cinetix/internal/service/auth"
	"cinetix/internal/service/booking"
	"cinetix/internal/service/catalog"
	"cinetix/internal/service/query"
	"cinetix/internal/service/report"
)

type Services struct {
	Auth    *auth.Service
	Booking *booking.Service
	Query   *query.Service
	Catalog *catalog.Service
	Report  *report.Service
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.ShowtimesPubSub,
	limiter *redis.SlidingWindowLimiter,
	authCfg config.AuthConfig,
) *Services {
	return &Services{
		Auth:    auth.New(store.Users(), authCfg),
		Booking: booking.New(store.Catalog(), store.Bookings(), cache, pubsub, limiter),
		Query:   query.New(store.Catalog(), store.Bookings(), cache),
		Catalog: catalog.New(store, cache, pubsub),
		Report:  report.New(store.Reports()),
	}
}
