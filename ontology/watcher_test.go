package ontology_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semschema/metric"
	"github.com/c360studio/semschema/ontology"
	"github.com/c360studio/semschema/shacl"
	"github.com/c360studio/semschema/storage"
	"github.com/c360studio/semschema/vocabulary/owl"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	cfg := writeSchemaFixture(t, "hash-v1")
	metrics := metric.NewMetrics()

	manager, err := ontology.NewManager(cfg, ontology.Options{
		NewStore:     storage.NewStore,
		NewValidator: shacl.NewValidator,
		Metrics:      metrics,
	})
	require.NoError(t, err)

	watcher, err := ontology.NewWatcher(manager, 20*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	go func() {
		close(started)
		_ = watcher.Start(ctx)
	}()
	<-started
	// Give the watcher a moment to establish directory watches.
	time.Sleep(100 * time.Millisecond)

	updated := domainOntologyFixture +
		"<http://example.org/trace#Tank> <" + owl.TypeIRI + "> <" + owl.ClassClass + "> .\n"
	require.NoError(t, os.WriteFile(cfg.Ontology.DomainPath, []byte(updated), 0644))

	reloads := metrics.ReloadsTotal.WithLabelValues("dairy", "success")
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if testutil.ToFloat64(reloads) >= 1 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	require.NoError(t, watcher.Stop())
	require.GreaterOrEqual(t, testutil.ToFloat64(reloads), 1.0,
		"watcher should reload after the ontology file changed")
}

func TestWatcherIgnoresUnchangedContent(t *testing.T) {
	cfg := writeSchemaFixture(t, "hash-v1")
	metrics := metric.NewMetrics()

	manager, err := ontology.NewManager(cfg, ontology.Options{
		NewStore:     storage.NewStore,
		NewValidator: shacl.NewValidator,
		Metrics:      metrics,
	})
	require.NoError(t, err)

	watcher, err := ontology.NewWatcher(manager, 20*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = watcher.Start(ctx) }()
	time.Sleep(100 * time.Millisecond)

	// Rewriting identical bytes must not trigger a reload.
	require.NoError(t, os.WriteFile(cfg.Ontology.DomainPath, []byte(domainOntologyFixture), 0644))
	time.Sleep(200 * time.Millisecond)

	cancel()
	require.NoError(t, watcher.Stop())
	reloads := metrics.ReloadsTotal.WithLabelValues("dairy", "success")
	require.Equal(t, 0.0, testutil.ToFloat64(reloads))
}
