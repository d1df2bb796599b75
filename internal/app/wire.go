//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	catalogGateway "freightbid/internal/gateway/httpapi/catalog"
	"freightbid/internal/handlers/rest/bid_history_get"
	"freightbid/internal/handlers/rest/driver_assign_post"
	"freightbid/internal/handlers/rest/driver_bid_delete"
	"freightbid/internal/handlers/rest/driver_bid_post"
	"freightbid/internal/handlers/rest/driver_bids_get"
	"freightbid/internal/handlers/rest/find_drivers_status_get"
	"freightbid/internal/handlers/rest/freight_bid_cancel_post"
	"freightbid/internal/handlers/rest/freight_bid_delete"
	"freightbid/internal/handlers/rest/freight_bid_get"
	"freightbid/internal/handlers/rest/freight_bid_post"
	"freightbid/internal/handlers/rest/freight_bid_put"
	"freightbid/internal/handlers/tasks/bid_expiry"
	"freightbid/internal/pkg/config"
	"freightbid/internal/pkg/factory/freight_handle"

	assignmentRepo "freightbid/internal/repository/assignment"
	driverbidRepo "freightbid/internal/repository/driverbid"
	freightbidRepo "freightbid/internal/repository/freightbid"
	driverbidService "freightbid/internal/service/driverbid"
	freightbidService "freightbid/internal/service/freightbid"
	freighteventsService "freightbid/internal/service/freightevents"
	matchingService "freightbid/internal/service/matching"
	queryService "freightbid/internal/service/query"

	"freightbid/pkg/background"
	"freightbid/pkg/cache/redis_adapter"
	"freightbid/pkg/logger"
	"freightbid/pkg/querier"
	"freightbid/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type Application struct {
	ServiceFreightBid ServiceFreightBid
	ServiceDriverBid  ServiceDriverBid
	ServiceMatching   ServiceMatching
	ServiceQuery      ServiceQuery
	BackgroundWorkers *background.Worker
}

type ServiceFreightBid interface {
	freight_bid_post.Service
	freight_bid_put.Service
	freight_bid_delete.Service
	freight_bid_cancel_post.Service
}

type ServiceDriverBid interface {
	driver_bid_post.Service
	driver_bids_get.Service
	driver_bid_delete.Service
}

type ServiceMatching interface {
	driver_assign_post.Service
	find_drivers_status_get.Service
}

type ServiceQuery interface {
	freight_bid_get.Service
	bid_history_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCacheStore,
		provideCatalogHTTPClient,
		provideCatalogGateway,

		provideFreightBidRepository,
		provideDriverBidRepository,
		provideAssignmentRepository,

		provideServiceFreightBid,
		provideServiceDriverBid,
		provideServiceMatching,
		provideServiceQuery,

		provideBidExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceFreightBid), new(*freightbidService.FreightBid)),
		wire.Bind(new(ServiceDriverBid), new(*driverbidService.DriverBid)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Matching)),
		wire.Bind(new(ServiceQuery), new(*queryService.Query)),

		wire.Bind(new(freightbidService.Repository), new(*freightbidRepo.Repository)),
		wire.Bind(new(freightbidService.CatalogGateway), new(*catalogGateway.CatalogGateway)),
		wire.Bind(new(freightbidService.StatusCache), new(*matchingService.Matching)),
		wire.Bind(new(driverbidService.Repository), new(*driverbidRepo.Repository)),
		wire.Bind(new(driverbidService.StatusCache), new(*matchingService.Matching)),
		wire.Bind(new(matchingService.FreightBidRepository), new(*freightbidRepo.Repository)),
		wire.Bind(new(matchingService.DriverBidRepository), new(*driverbidRepo.Repository)),
		wire.Bind(new(matchingService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(matchingService.CacheStore), new(*redis_adapter.RedisAdapter)),
		wire.Bind(new(queryService.FreightBidRepository), new(*freightbidRepo.Repository)),
		wire.Bind(new(queryService.DriverBidRepository), new(*driverbidRepo.Repository)),
		wire.Bind(new(queryService.AssignmentRepository), new(*assignmentRepo.Repository)),

		wire.Bind(new(freightbidService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverbidService.TxManager), new(*tx.Manager)),
		wire.Bind(new(matchingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(queryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(bid_expiry.Service), new(*freightbidService.FreightBid)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	FreightEventsService *freighteventsService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-freight-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCacheStore,
		provideCatalogHTTPClient,
		provideCatalogGateway,

		provideFreightBidRepository,
		provideDriverBidRepository,
		provideAssignmentRepository,

		provideServiceFreightBid,
		provideServiceMatching,
		provideStatusHandlerFactory,
		provideFreightEventsService,

		wire.Bind(new(freightbidService.Repository), new(*freightbidRepo.Repository)),
		wire.Bind(new(freightbidService.CatalogGateway), new(*catalogGateway.CatalogGateway)),
		wire.Bind(new(freightbidService.StatusCache), new(*matchingService.Matching)),
		wire.Bind(new(freightbidService.TxManager), new(*tx.Manager)),
		wire.Bind(new(matchingService.FreightBidRepository), new(*freightbidRepo.Repository)),
		wire.Bind(new(matchingService.DriverBidRepository), new(*driverbidRepo.Repository)),
		wire.Bind(new(matchingService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(matchingService.CacheStore), new(*redis_adapter.RedisAdapter)),
		wire.Bind(new(matchingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(freighteventsService.FreightBidService), new(*freightbidService.FreightBid)),
		wire.Bind(new(freighteventsService.HandlerFactory), new(*freight_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCacheStore(redisClient *goredis.Client) *redis_adapter.RedisAdapter {
	return redis_adapter.New(redisClient)
}

func provideCatalogHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{
		Timeout: cfg.Catalog.RequestTimeout,
	}
}

func provideCatalogGateway(
	client *http.Client,
	cacheStore *redis_adapter.RedisAdapter,
	cfg *config.Config,
) *catalogGateway.CatalogGateway {
	return catalogGateway.New(client, cacheStore, cfg.Catalog.BaseURL, cfg.Catalog.CacheTTL)
}

func provideFreightBidRepository(querier *querier.Querier) *freightbidRepo.Repository {
	return freightbidRepo.New(querier)
}

func provideDriverBidRepository(querier *querier.Querier) *driverbidRepo.Repository {
	return driverbidRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideServiceFreightBid(
	repository freightbidService.Repository,
	catalog freightbidService.CatalogGateway,
	statusCache freightbidService.StatusCache,
	txManager freightbidService.TxManager,
) *freightbidService.FreightBid {
	return freightbidService.New(repository, catalog, statusCache, txManager)
}

func provideServiceDriverBid(
	repository driverbidService.Repository,
	statusCache driverbidService.StatusCache,
	txManager driverbidService.TxManager,
) *driverbidService.DriverBid {
	return driverbidService.New(repository, statusCache, txManager)
}

func provideServiceMatching(
	freightBids matchingService.FreightBidRepository,
	driverBids matchingService.DriverBidRepository,
	assignments matchingService.AssignmentRepository,
	cacheStore matchingService.CacheStore,
	cfg *config.Config,
	txManager matchingService.TxManager,
) *matchingService.Matching {
	return matchingService.New(
		freightBids,
		driverBids,
		assignments,
		cacheStore,
		cfg.Redis.StatusTTL,
		txManager,
	)
}

func provideServiceQuery(
	freightBids queryService.FreightBidRepository,
	driverBids queryService.DriverBidRepository,
	assignments queryService.AssignmentRepository,
	txManager queryService.TxManager,
) *queryService.Query {
	return queryService.New(freightBids, driverBids, assignments, txManager)
}

func provideStatusHandlerFactory(freightBidService freighteventsService.FreightBidService) *freight_handle.StatusHandlerFactory {
	return freight_handle.NewStatusHandlerFactory(freightBidService)
}

func provideFreightEventsService(handlerFactory freighteventsService.HandlerFactory) *freighteventsService.Service {
	return freighteventsService.New(handlerFactory)
}

func provideBidExpiryTask(
	log logger.Logger,
	freightBidService bid_expiry.Service,
	cfg *config.Config,
) *bid_expiry.BidExpiry {
	return bid_expiry.NewBidExpiry(
		log,
		freightBidService,
		cfg.Tasks.BidExpiryInterval,
		cfg.Tasks.BidExpiryMaxAge,
	)
}

func provideTaskList(
	bidExpiryTask *bid_expiry.BidExpiry,
) []background.Task {
	return []background.Task{
		bidExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
