package service

import (
	"context"
	"log"
	"time"

	"Community_Hub/internal/model"
	"Community_Hub/internal/pkg"
	"Community_Hub/internal/repository/postgres"
)

type Sender func(ctx context.Context, ob *model.ActivityOutbox) error

// OutboxRelayer drains pending activity rows into the configured sender on
// a fixed tick; failures are marked for retry and retried on a later pass.
type OutboxRelayer struct {
	repo      *postgres.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &postgres.OutboxRepository{DB: postgres.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender publishes outbox rows keyed by community, so each
// community's activity stays ordered within its partition.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ActivityOutbox) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.CommunityID), []byte(ob.Payload))
	}
}

// LogSender is the fallback when no broker is configured.
func LogSender(ctx context.Context, ob *model.ActivityOutbox) error {
	log.Printf("OUTBOX SEND type=%s community=%d user=%d payload=%s",
		ob.EventType, ob.CommunityID, ob.UserID, ob.Payload)
	return nil
}
