package worker

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmehdipour/radius-admin/internal/config"
	"github.com/jmehdipour/radius-admin/internal/kafka"
	"github.com/jmehdipour/radius-admin/internal/metrics"
	"github.com/jmehdipour/radius-admin/internal/notifier"
	"github.com/jmehdipour/radius-admin/internal/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Run the provisioning events worker (kafka -> webhooks)",
	RunE:  runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	// webhook endpoints -> notifier
	var eps []notifier.Endpoint
	for _, wc := range cfg.Webhooks {
		if !wc.Enabled || strings.TrimSpace(wc.URL) == "" {
			continue
		}
		eps = append(eps,
			notifier.NewHTTPEndpoint(
				wc.Name,
				strings.TrimRight(wc.URL, "/"),
				wc.TimeoutMs,
				wc.Breaker.FailThreshold,
				wc.Breaker.OpenForMs,
			),
		)
	}
	if len(eps) == 0 {
		return fmt.Errorf("no webhooks enabled in config")
	}
	ntf := notifier.New(eps, cfg.Events.MaxAttempts)

	groupID := cfg.Kafka.GroupID
	if groupID == "" {
		groupID = "radadmin-events"
	}

	consumer := kafka.NewConsumerFromConfig(kafka.Config{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          cfg.Events.Topic,
		GroupID:        groupID,
		MinBytes:       cfg.Kafka.MinBytes,
		MaxBytes:       cfg.Kafka.MaxBytes,
		CommitInterval: time.Duration(cfg.Kafka.CommitInterval) * time.Millisecond,
	})
	defer consumer.Close()

	w := worker.NewEvents(consumer, ntf)
	if cfg.Events.Workers > 0 {
		w.Workers = cfg.Events.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf(">> events worker started topic=%s group=%s workers=%d endpoints=%d",
		cfg.Events.Topic, groupID, w.Workers, len(eps))

	return w.Run(ctx)
}
