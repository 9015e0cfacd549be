package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kajalkumari31/ministore/config"
	"github.com/Kajalkumari31/ministore/internal/catalog"
)

func TestCheckCatalogSeedsOnce(t *testing.T) {
	store, err := catalog.NewBoltProductStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer store.Close()

	application := NewApplication(config.DefaultAppConfig)
	application.OverrideStore(store)

	application.checkCatalog()
	total, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(len(defaultCatalog)), total)

	// a second pass must not duplicate the seed set
	application.checkCatalog()
	total, err = store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(len(defaultCatalog)), total)
}

func TestInitDbDropsAndReseeds(t *testing.T) {
	store, err := catalog.NewBoltProductStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	application := NewApplication(config.DefaultAppConfig)
	application.OverrideStore(store)
	application.checkCatalog()

	price := 49.0
	_, err = application.Service().Create(ctx, catalog.CreateRequest{Title: "Stray Product", Price: &price})
	require.NoError(t, err)

	application.InitDb()

	total, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(defaultCatalog)), total, "reset must leave only the seed set")

	rows, err := store.List(ctx, "stray")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestInitJobRegistersSchedules(t *testing.T) {
	application := NewApplication(config.DefaultAppConfig)
	application.initJob()
	defer application.sched.Stop()

	// the stats task and the daily heartbeat
	assert.Len(t, application.sched.Entries(), 2)
}

func TestOpenProductStoreDefaultsToBolt(t *testing.T) {
	t.Setenv("MINISTORE_SYSTEM_WORKDIR", t.TempDir())
	loaded := config.LoadConfig("")
	loaded.Database.Type = "bolt"

	store, err := openProductStore(loaded)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Count(context.Background())
	assert.NoError(t, err)
}
