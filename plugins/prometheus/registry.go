package prometheus

import (
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iotaledger/assetledger/packages/registry"
)

// RegisterRegistryMetrics adds the metrics of the given Registry. Counters are fed by its events, the gauges are read
// from the committed state on every scrape.
func (m *Metrics) RegisterRegistryMetrics(r *registry.Registry) {
	m.assetsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "registry_assets_created_total",
		Help: "number of assets created since the start of the node",
	})
	m.assetsTransferred = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "registry_assets_transferred_total",
		Help: "number of asset transfers since the start of the node",
	})
	m.nonce = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "registry_nonce",
		Help: "current value of the identity nonce (including failed creations)",
	})
	m.assetCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "registry_asset_count",
		Help: "number of assets in the registry",
	})
	ownedAssetsLimit := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "registry_owned_assets_limit",
		Help: "maximum number of assets a single account can hold",
	})
	ownedAssetsLimit.Set(float64(r.OwnedAssetsLimit()))

	m.registry.MustRegister(m.assetsCreated)
	m.registry.MustRegister(m.assetsTransferred)
	m.registry.MustRegister(m.nonce)
	m.registry.MustRegister(m.assetCount)
	m.registry.MustRegister(ownedAssetsLimit)

	r.Events.AssetCreated.Hook(event.NewClosure(func(*registry.AssetCreatedEvent) {
		m.assetsCreated.Inc()
	}))
	r.Events.AssetTransferred.Hook(event.NewClosure(func(*registry.AssetTransferredEvent) {
		m.assetsTransferred.Inc()
	}))

	m.addCollect(func() {
		if nonce, err := r.Nonce(); err == nil {
			m.nonce.Set(float64(nonce))
		}
		if assetCount, err := r.AssetCount(); err == nil {
			m.assetCount.Set(float64(assetCount))
		}
	})
}
