package di

import (
	"context"
	"fmt"

	"foursquared/api"
	"foursquared/api/foursquare"
	"foursquared/config"
	redisdao "foursquared/dao/redis"
	"foursquared/db"
	"foursquared/server"
	"foursquared/server/handlers"
	services "foursquared/service"
	"foursquared/store"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisStateDao         *redisdao.RedisStateDAO
	Store                 *store.Store
	FoursquareAPI         foursquare.FoursquareAPI
	SearchService         *services.SearchService
	SearchHandler         *handlers.SearchHandler
	VenueHandler          *handlers.VenueHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	FoursquaredHttpServer *server.FoursquaredHttpServer
}

// NewContainer initializes and wires up all dependencies. Any env other than
// "prod" swaps the real Redis and Foursquare clients for mocks so the service
// runs standalone.
func NewContainer(cfg *config.Config, env string) *Container {
	log.Info().Str("env", env).Msg("initializing container")

	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient()
		log.Info().Msg("using mock redis client")
	} else {
		internalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisClient = db.NewSimpleRedisClient(context.Background(), internalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	redisStateDao := redisdao.NewRedisStateDAO(redisClient)

	var foursquareAPI foursquare.FoursquareAPI
	if env != "prod" {
		foursquareAPI = foursquare.NewFoursquareApiClientMock()
		log.Info().Msg("using mock foursquare api")
	} else {
		httpClient := api.NewHTTPClient(config.FOURSQUARE_ENDPOINT_BASE_V2)
		client := foursquare.NewFoursquareApiClient(httpClient)
		client.SetCredentials(cfg.Foursquare.ClientID, cfg.Foursquare.ClientSecret)
		foursquareAPI = client
	}

	appStore := store.NewStore()
	searchService := services.NewSearchService(appStore, redisStateDao, foursquareAPI)

	searchHandler := handlers.NewSearchHandler(searchService)
	venueHandler := handlers.NewVenueHandler(searchService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(searchHandler, venueHandler, muxRouter)
	httpServer := server.NewFoursquaredHttpServer(router, muxRouter, cfg.Server.Addr())

	return &Container{
		RedisClient:           redisClient,
		RedisStateDao:         redisStateDao,
		Store:                 appStore,
		FoursquareAPI:         foursquareAPI,
		SearchService:         searchService,
		SearchHandler:         searchHandler,
		VenueHandler:          venueHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		FoursquaredHttpServer: httpServer,
	}
}
