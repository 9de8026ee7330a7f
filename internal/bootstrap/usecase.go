package bootstrap

import (
	aggregatorUc "github.com/muhammadchandra19/quotestream/internal/usecase/aggregator"
	broadcastUc "github.com/muhammadchandra19/quotestream/internal/usecase/broadcast"
	feedUc "github.com/muhammadchandra19/quotestream/internal/usecase/feed"
	orchestratorUc "github.com/muhammadchandra19/quotestream/internal/usecase/orchestrator"
	quoteUc "github.com/muhammadchandra19/quotestream/internal/usecase/quote"
	"github.com/muhammadchandra19/quotestream/internal/usecase/symbol"
)

// Usecase is the usecase layer of the quote stream service.
type Usecase struct {
	SymbolMapper *symbol.Mapper
	QuoteUsecase *quoteUc.Usecase
	Aggregator   *aggregatorUc.Aggregator
	Hub          *broadcastUc.Hub
	FeedClient   *feedUc.Client
	Orchestrator *orchestratorUc.Orchestrator
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.SymbolMapper = symbol.NewMapper()

	opts := []quoteUc.Option{quoteUc.WithKnownPairs(b.Usecase.SymbolMapper.AllPairs()...)}
	if b.Repository.LastTickCache != nil {
		opts = append(opts, quoteUc.WithLastTickCache(b.Repository.LastTickCache))
	}
	if b.Repository.AveragePublisher != nil {
		opts = append(opts, quoteUc.WithAveragePublisher(b.Repository.AveragePublisher))
	}

	b.Usecase.QuoteUsecase = quoteUc.NewUsecase(b.Repository.QuoteRepository, b.Logger, opts...)
	b.Usecase.Aggregator = aggregatorUc.NewAggregator(b.Usecase.QuoteUsecase, b.Config.Aggregator, b.Logger)
	b.Usecase.Hub = broadcastUc.NewHub(b.Logger)
	b.Usecase.FeedClient = feedUc.NewClient(b.Config.Feed, b.Usecase.SymbolMapper, b.Logger)
	b.Usecase.Orchestrator = orchestratorUc.NewOrchestrator(
		b.Usecase.FeedClient,
		b.Usecase.Aggregator,
		b.Usecase.Hub,
		b.Logger,
	)
}
