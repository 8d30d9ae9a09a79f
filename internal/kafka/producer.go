package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/opty-app/opty-search/internal/config"
	"github.com/opty-app/opty-search/internal/models"
	"github.com/opty-app/opty-search/internal/usecase"
	"github.com/opty-app/opty-search/pkg/util"
)

type notifier struct {
	producer sarama.SyncProducer
	topic    string
	metrics  *prometheus.HistogramVec
}

// NewNotifier builds the Kafka-backed notification publisher. When Kafka
// is disabled the returned notifier drops everything.
func NewNotifier(lc fx.Lifecycle, conf *config.Config) (usecase.Notifier, error) {
	if !conf.Kafka.Enabled {
		return &noopNotifier{}, nil
	}

	metrics, err := util.GetHistogramVec("kafka_notifications_published", "status", "topic")
	if err != nil {
		return nil, fmt.Errorf("get histogram vec: %w", err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(conf.Kafka.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("new sync producer: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return producer.Close()
		},
	})

	return &notifier{
		producer: producer,
		topic:    conf.Kafka.Topic,
		metrics:  metrics,
	}, nil
}

func (n *notifier) Notify(ctx context.Context, notification models.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	start := time.Now()
	partition, offset, err := n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Value: sarama.ByteEncoder(payload),
	})

	status := "success"
	if err != nil {
		status = "error"
	}
	n.metrics.WithLabelValues(status, n.topic).Observe(time.Since(start).Seconds())

	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	log.Debugw(ctx, "notification published",
		"topic", n.topic, "partition", partition, "offset", offset)
	return nil
}

// noopNotifier is used when Kafka is disabled.
type noopNotifier struct{}

func (n *noopNotifier) Notify(ctx context.Context, notification models.Notification) error {
	log.Debugw(ctx, "notifications are disabled, dropping",
		"title", notification.Title)
	return nil
}
