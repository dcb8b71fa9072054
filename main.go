package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/dig"

	"github.com/iotaledger/assetledger/packages/registry"
	"github.com/iotaledger/assetledger/plugins/clock"
	"github.com/iotaledger/assetledger/plugins/config"
	"github.com/iotaledger/assetledger/plugins/database"
	"github.com/iotaledger/assetledger/plugins/logger"
	"github.com/iotaledger/assetledger/plugins/prometheus"
	registryplugin "github.com/iotaledger/assetledger/plugins/registry"
	"github.com/iotaledger/assetledger/plugins/webapi"
)

type dependencies struct {
	dig.In

	Logger       *logger.Root
	Database     *database.Database
	Registry     *registry.Registry
	Server       *webapi.Server
	Synchronizer *clock.Synchronizer
}

func main() {
	if err := config.Fetch(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	container, shutdownDatabase, err := newContainer(config.Node)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = container.Invoke(run)
	shutdownDatabase()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newContainer provides all components of the node. The returned shutdownDatabase closes the database if one was
// opened, also when a component that depends on it failed to be constructed.
func newContainer(v *viper.Viper) (container *dig.Container, shutdownDatabase func(), err error) {
	container = dig.New()

	var openedDatabase *database.Database
	shutdownDatabase = func() {
		if openedDatabase != nil {
			openedDatabase.Shutdown()
		}
	}

	providers := []interface{}{
		func() *viper.Viper { return v },
		logger.NewRoot,
		func(v *viper.Viper, root *logger.Root) (db *database.Database, err error) {
			if db, err = database.New(v, root.NewLogger(database.PluginName)); err == nil {
				openedDatabase = db
			}
			return db, err
		},
		func(v *viper.Viper, db *database.Database, root *logger.Root) (*registry.Registry, error) {
			return registryplugin.New(v, db.Store(), root.NewLogger(registryplugin.PluginName))
		},
		func(r *registry.Registry, db *database.Database) *prometheus.Metrics {
			metrics := prometheus.New()
			metrics.RegisterRegistryMetrics(r)
			metrics.RegisterDatabaseMetrics(db)
			metrics.RegisterProcessMetrics()
			return metrics
		},
		func(v *viper.Viper, r *registry.Registry, metrics *prometheus.Metrics, root *logger.Root) (*webapi.Server, error) {
			return webapi.New(v, r, metrics, root.NewLogger(webapi.PluginName))
		},
		func(v *viper.Viper, root *logger.Root) (*clock.Synchronizer, error) {
			return clock.New(v, root.NewLogger(clock.PluginName))
		},
	}

	for _, provider := range providers {
		if err = container.Provide(provider); err != nil {
			return nil, nil, errors.Errorf("failed to provide dependency: %w", err)
		}
	}

	return container, shutdownDatabase, nil
}

func run(deps dependencies) error {
	log := deps.Logger.NewLogger("Node")
	defer func() { _ = deps.Logger.Sync() }()

	if err := deps.Database.Start(); err != nil {
		return errors.Errorf("failed to mark database as in use: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		deps.Synchronizer.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		deps.Server.Run(ctx)
	}()

	assetCount, err := deps.Registry.AssetCount()
	if err != nil {
		log.Warnf("Failed to read asset count: %s", err)
	}
	log.Infow("Node started", "assetCount", assetCount, "ownedAssetsLimit", deps.Registry.OwnedAssetsLimit())
	<-ctx.Done()
	log.Info("Shutting down ...")

	wg.Wait()
	deps.Database.Shutdown()
	log.Info("Shutting down ... done")

	return nil
}
