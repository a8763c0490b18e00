// Package di wires gateways, usecases and shared infrastructure together.
package di

import (
	"feedhub/config"
	"feedhub/gateway/article_state_gateway"
	"feedhub/gateway/feed_subscription_gateway"
	"feedhub/gateway/fetch_feed_gateway"
	"feedhub/gateway/tombstone_gateway"
	"feedhub/usecase/article_state_usecase"
	"feedhub/usecase/fetch_timeline_usecase"
	"feedhub/usecase/register_feed_usecase"
	"feedhub/usecase/remove_article_usecase"
	"feedhub/usecase/subscription_usecase"
	"feedhub/utils"
	"feedhub/utils/metrics"
	"feedhub/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ApplicationComponents holds every constructed usecase plus the shared
// metrics registry the HTTP layer exposes.
type ApplicationComponents struct {
	FetchTimelineUsecase *fetch_timeline_usecase.FetchTimelineUsecase
	RegisterFeedUsecase  *register_feed_usecase.RegisterFeedUsecase
	SubscriptionUsecase  *subscription_usecase.SubscriptionUsecase
	ArticleStateUsecase  *article_state_usecase.ArticleStateUsecase
	RemoveArticleUsecase *remove_article_usecase.RemoveArticleUsecase

	MetricsRegistry *prometheus.Registry
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	clientFactory := utils.NewHTTPClientFactory(
		cfg.HTTP.ClientTimeout,
		cfg.HTTP.DialTimeout,
		cfg.HTTP.TLSHandshakeTimeout,
		cfg.HTTP.IdleConnTimeout,
	)
	hostLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.ExternalAPIInterval)
	fetchMetrics := metrics.NewFeedFetchMetrics(registry)

	fetchGateway := fetch_feed_gateway.NewFetchFeedGateway(clientFactory.CreateFeedClient(), hostLimiter, fetchMetrics)
	subscriptionGateway := feed_subscription_gateway.NewFeedSubscriptionGateway(pool)
	stateGateway := article_state_gateway.NewArticleStateGateway(pool)
	tombstoneGateway := tombstone_gateway.NewTombstoneGateway(pool)

	return &ApplicationComponents{
		FetchTimelineUsecase: fetch_timeline_usecase.NewFetchTimelineUsecase(subscriptionGateway, tombstoneGateway, fetchGateway, cfg.Aggregate),
		RegisterFeedUsecase:  register_feed_usecase.NewRegisterFeedUsecase(fetchGateway, subscriptionGateway),
		SubscriptionUsecase:  subscription_usecase.NewSubscriptionUsecase(subscriptionGateway),
		ArticleStateUsecase:  article_state_usecase.NewArticleStateUsecase(stateGateway),
		RemoveArticleUsecase: remove_article_usecase.NewRemoveArticleUsecase(tombstoneGateway),
		MetricsRegistry:      registry,
	}
}
