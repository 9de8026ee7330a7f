package bootstrap

import (
	"github.com/muhammadchandra19/quotestream/internal/infrastructure/kafka/average"
	quoteInfra "github.com/muhammadchandra19/quotestream/internal/infrastructure/postgresql/quote"
	"github.com/muhammadchandra19/quotestream/internal/infrastructure/redis/lasttick"
)

// Repository holds the persistence adapters. The cache and publisher are nil when disabled.
type Repository struct {
	QuoteRepository  *quoteInfra.Repository
	LastTickCache    *lasttick.Cache
	AveragePublisher *average.Publisher
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.QuoteRepository = quoteInfra.NewRepository(b.PostgreSQL, b.Logger)

	if b.Redis != nil {
		b.Repository.LastTickCache = lasttick.NewCache(b.Redis, b.Config.Redis.Key(lasttick.HashName), b.Config.Redis.LastTickTTL, b.Logger)
	}
	if b.Config.Kafka.Enabled {
		b.Repository.AveragePublisher = average.NewPublisher(b.Config.Kafka, b.Logger)
	}
}
