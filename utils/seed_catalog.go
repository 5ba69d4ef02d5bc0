package utils

import (
	"context"

	"github.com/princinho/arcadiabackend/database"
	"github.com/rs/zerolog"
)

// CollectionSeed describes what seeding did to one collection.
type CollectionSeed struct {
	Collection string `json:"collection"`
	Existing   int64  `json:"existing"`
	Inserted   int    `json:"inserted"`
	Skipped    bool   `json:"skipped"`
	Err        error  `json:"-"`
	Error      string `json:"error,omitempty"`
}

// SeedReport is informational only; seeding never fails startup.
type SeedReport struct {
	StoreAvailable bool             `json:"store_available"`
	Collections    []CollectionSeed `json:"collections"`
}

type seedSet struct {
	collection string
	docs       []any
}

// SeedCatalog inserts the sample products, FAQs and blog posts into each
// collection that is currently empty. Non-empty collections are left
// untouched. Errors are logged and swallowed so the API still comes up
// without a working store; a nil store skips seeding altogether.
func SeedCatalog(ctx context.Context, store database.Store, log zerolog.Logger) SeedReport {
	report := SeedReport{StoreAvailable: store != nil}
	if store == nil {
		log.Info().Msg("no database configured, skipping catalog seed")
		return report
	}

	sets := []seedSet{
		{database.ProductsCollection, toDocs(SampleProducts())},
		{database.FAQsCollection, toDocs(SampleFAQs())},
		{database.BlogPostsCollection, toDocs(SampleBlogPosts())},
	}
	for _, set := range sets {
		res := seedCollection(ctx, store, set)
		ev := log.Info()
		if res.Err != nil {
			ev = log.Warn().Err(res.Err)
		}
		ev.Str("collection", res.Collection).
			Int64("existing", res.Existing).
			Int("inserted", res.Inserted).
			Bool("skipped", res.Skipped).
			Msg("catalog seed")
		report.Collections = append(report.Collections, res)
	}
	return report
}

func seedCollection(ctx context.Context, store database.Store, set seedSet) CollectionSeed {
	res := CollectionSeed{Collection: set.collection}

	n, err := store.Count(ctx, set.collection)
	if err != nil {
		return res.failed(err)
	}
	res.Existing = n
	if n != 0 {
		res.Skipped = true
		return res
	}

	for _, doc := range set.docs {
		if _, err := store.Insert(ctx, set.collection, doc); err != nil {
			return res.failed(err)
		}
		res.Inserted++
	}
	return res
}

func (r CollectionSeed) failed(err error) CollectionSeed {
	r.Err = err
	r.Error = err.Error()
	return r
}

func toDocs[T any](items []T) []any {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
