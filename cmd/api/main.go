package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/lead-engine/internal/infra/database"
	"github.com/xavierca1/lead-engine/internal/infra/http/handlers"
	"github.com/xavierca1/lead-engine/internal/infra/http/middleware"
	"github.com/xavierca1/lead-engine/internal/infra/mail"
	"github.com/xavierca1/lead-engine/internal/infra/queue"
	"github.com/xavierca1/lead-engine/internal/infra/worker"
	"github.com/xavierca1/lead-engine/internal/scoring"
	"github.com/xavierca1/lead-engine/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Config de scoring (snapshot imutável; falha cai nos defaults)
	cfg := scoring.Load(os.Getenv("SCORING_CONFIG_PATH"))
	scorer := scoring.NewScorer(cfg)

	// 2. Repositórios
	leadRepo := database.NewLeadRepository(db)
	eventRepo := database.NewEventRepository(db)
	ledger := database.NewNotificationLedger(db)

	// 3. Fila e email
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("ALERT_EMAIL"),
	)

	// 4. Worker de alertas (consome a fila e manda email)
	alertWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go alertWorker.Start(queue.QueueName)

	// 5. UseCases
	ingestUC := usecase.NewIngestLeadUseCase(leadRepo, scorer, cfg)

	// 6. Rescoring Worker (loop em background, desacoplado das requests)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	interval := 5 * time.Minute
	if s := os.Getenv("RESCORING_INTERVAL_SECONDS"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			interval = time.Duration(secs) * time.Second
		}
	}
	rescoringWorker := worker.NewRescoringWorker(leadRepo, eventRepo, ledger, producer, scorer, cfg, interval)
	go rescoringWorker.Start(ctx)

	// 7. Handlers
	leadHandler := handlers.NewLeadHandler(ingestUC)
	eventHandler := handlers.NewEventHandler(eventRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 8. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.CaptureLead)
	r.Post("/events", eventHandler.TrackEvent)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Lead Engine rodando na porta :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
