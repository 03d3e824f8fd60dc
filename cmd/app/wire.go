//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/yanqian/product-reviews/internal/bootstrap"
	"github.com/yanqian/product-reviews/internal/domain/catalog"
	"github.com/yanqian/product-reviews/internal/domain/review"
	"github.com/yanqian/product-reviews/internal/domain/summarizer"
	"github.com/yanqian/product-reviews/internal/domain/user"
	"github.com/yanqian/product-reviews/internal/infra/config"
	httpiface "github.com/yanqian/product-reviews/internal/interface/http"
	"github.com/yanqian/product-reviews/pkg/logger"
)

func initializeApp(ctx context.Context) (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		providePool,
		provideUserRepository,
		provideProductRepository,
		provideReviewRepository,
		provideProductCache,
		provideUserConfig,
		provideSummaryConfig,
		provideLLM,
		provideTokenCounter,
		provideProductLookup,
		provideUserLookup,
		provideProductFinder,
		provideReviewLister,
		user.NewService,
		catalog.NewService,
		review.NewService,
		summarizer.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
