package database

import (
	"context"

	"github.com/princinho/arcadiabackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Catalog gives typed access to the catalog collections. A Catalog built
// over a nil Store serves empty lists, reports every lookup as
// ErrNotFound and refuses writes with ErrUnavailable.
type Catalog struct {
	store Store
}

func NewCatalog(store Store) *Catalog {
	return &Catalog{store: store}
}

// Store returns the underlying store, nil in store-less mode.
func (c *Catalog) Store() Store {
	return c.store
}

func (c *Catalog) Available() bool {
	return c.store != nil
}

func (c *Catalog) Products(ctx context.Context) ([]models.Product, error) {
	return findAll[models.Product](ctx, c.store, ProductsCollection, nil)
}

func (c *Catalog) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	if err := c.findOne(ctx, ProductsCollection, bson.M{"slug": slug}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Reviews lists reviews, restricted to one product when productSlug is set.
func (c *Catalog) Reviews(ctx context.Context, productSlug string) ([]models.Review, error) {
	filter := bson.M{}
	if productSlug != "" {
		filter["product_slug"] = productSlug
	}
	return findAll[models.Review](ctx, c.store, ReviewsCollection, filter)
}

func (c *Catalog) AddReview(ctx context.Context, review models.Review) (string, error) {
	if c.store == nil {
		return "", ErrUnavailable
	}
	return c.store.Insert(ctx, ReviewsCollection, review)
}

func (c *Catalog) BlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return findAll[models.BlogPost](ctx, c.store, BlogPostsCollection, nil)
}

func (c *Catalog) BlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := c.findOne(ctx, BlogPostsCollection, bson.M{"slug": slug}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Catalog) FAQs(ctx context.Context) ([]models.FAQ, error) {
	return findAll[models.FAQ](ctx, c.store, FAQsCollection, nil)
}

func findAll[T any](ctx context.Context, store Store, collection string, filter bson.M) ([]T, error) {
	items := make([]T, 0)
	if store == nil {
		return items, nil
	}
	if err := store.FindAll(ctx, collection, filter, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (c *Catalog) findOne(ctx context.Context, collection string, filter bson.M, result any) error {
	if c.store == nil {
		return ErrNotFound
	}
	return c.store.FindOne(ctx, collection, filter, result)
}
