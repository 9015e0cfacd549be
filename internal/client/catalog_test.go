package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kajalkumari31/ministore/config"
	"github.com/Kajalkumari31/ministore/internal/catalog"
	"github.com/Kajalkumari31/ministore/internal/domain"
	"github.com/Kajalkumari31/ministore/internal/shopapi"
	"github.com/Kajalkumari31/ministore/internal/webserver"
)

// startCatalogServer serves the real product routes over httptest.
func startCatalogServer(t *testing.T) *Catalog {
	t.Helper()
	ws := webserver.Init(config.DefaultAppConfig)

	store, err := catalog.NewBoltProductStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	shopapi.Init(catalog.NewService(store))

	srv := httptest.NewServer(ws.Echo())
	t.Cleanup(srv.Close)
	return NewCatalog(srv.URL)
}

func TestCreateListGetRoundTrip(t *testing.T) {
	api := startCatalogServer(t)
	ctx := context.Background()

	price := 1299.0
	created, err := api.Create(ctx, catalog.CreateRequest{Title: "Backpack", Price: &price})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.DefaultStock, created.Stock)

	got, err := api.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Backpack", got.Title)

	all, err := api.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)

	filtered, err := api.List(ctx, "backpack")
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	none, err := api.List(ctx, "watch")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetMapsNotFound(t *testing.T) {
	api := startCatalogServer(t)
	_, err := api.Get(context.Background(), 424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateMapsValidationError(t *testing.T) {
	api := startCatalogServer(t)

	price := -5.0
	_, err := api.Create(context.Background(), catalog.CreateRequest{Title: "X", Price: &price})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestListMapsUnavailable(t *testing.T) {
	api := NewCatalog("http://127.0.0.1:1") // nothing listens here
	_, err := api.List(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
