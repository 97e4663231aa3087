package di

import (
	"mise/config"
	"mise/driver/mise_db"
	"mise/driver/search_cache"
	"mise/gateway/search_analytics_gateway"
	"mise/gateway/search_gateway"
	"mise/gateway/suggestion_gateway"
	"mise/gateway/trending_gateway"
	"mise/job"
	"mise/usecase/search_recipe_usecase"
	"mise/usecase/search_usecase"
	"mise/usecase/suggest_usecase"
	"mise/usecase/trending_usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	FederatedSearchUsecase      *search_usecase.FederatedSearchUsecase
	AdvancedRecipeSearchUsecase *search_recipe_usecase.AdvancedRecipeSearchUsecase
	SuggestUsecase              *suggest_usecase.SuggestUsecase
	TrendingUsecase             *trending_usecase.TrendingUsecase
	AnalyticsWorker             *job.AnalyticsWorker
	MiseDBRepository            *mise_db.MiseDBRepository
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	repository := mise_db.NewMiseDBRepository(pool)

	searchGatewayImpl := search_gateway.NewSearchGateway(repository)
	suggestionGatewayImpl := suggestion_gateway.NewSuggestionGateway(repository)
	trendingGatewayImpl := trending_gateway.NewTrendingGateway(repository)
	analyticsGatewayImpl := search_analytics_gateway.NewSearchAnalyticsGateway(repository)

	analyticsWorker := job.NewAnalyticsWorker(analyticsGatewayImpl, cfg.Analytics.QueueSize)

	trendingCache := search_cache.NewSearchCache(cfg)

	federatedSearchUsecase := search_usecase.NewFederatedSearchUsecase(
		searchGatewayImpl,
		searchGatewayImpl,
		searchGatewayImpl,
		analyticsWorker,
	)
	advancedRecipeSearchUsecase := search_recipe_usecase.NewAdvancedRecipeSearchUsecase(searchGatewayImpl, analyticsWorker)
	suggestUsecase := suggest_usecase.NewSuggestUsecase(suggestionGatewayImpl, suggestionGatewayImpl)
	trendingUsecase := trending_usecase.NewTrendingUsecase(trendingGatewayImpl, trendingCache)

	return &ApplicationComponents{
		FederatedSearchUsecase:      federatedSearchUsecase,
		AdvancedRecipeSearchUsecase: advancedRecipeSearchUsecase,
		SuggestUsecase:              suggestUsecase,
		TrendingUsecase:             trendingUsecase,
		AnalyticsWorker:             analyticsWorker,
		MiseDBRepository:            repository,
	}
}
