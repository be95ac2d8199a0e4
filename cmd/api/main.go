package main

import (
	"context"
	"log"

	"Community_Hub/internal/config"
	"Community_Hub/internal/pkg"
	"Community_Hub/internal/repository/postgres"
	"Community_Hub/internal/repository/redis"
	"Community_Hub/internal/router"
	"Community_Hub/internal/service"
)

func main() {
	cfg := config.Load()
	pkg.SetSecrets(cfg.AccessSecret, cfg.RefreshSecret)

	if err := postgres.InitDB(cfg.PostgresDSN); err != nil {
		panic(err)
	}
	if err := postgres.Migrate(); err != nil {
		panic(err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// Activity events go to Kafka when a broker is reachable, the log otherwise.
	sender := service.Sender(service.LogSender)
	producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	if err != nil {
		log.Printf("kafka unavailable, relaying activity to log: %v", err)
	} else {
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(sender).Run(ctx)

	r := router.InitRouter(cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
