package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/julienschmidt/httprouter"

	. "github.com/jimiolaniyan/gomicroauth"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		slog.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}

	if err = client.Ping(ctx, nil); err != nil {
		slog.Error("failed to ping mongo", "error", err)
		os.Exit(1)
	}

	users := client.Database(cfg.MongoDB).Collection("users")

	svc := NewService(NewMongoUserRepository(users))
	issuer := NewTokenIssuer(cfg)

	router := httprouter.New()
	router.Handler(http.MethodPost, "/auth/register", RegisterUserHandler(svc))
	router.Handler(http.MethodPost, "/auth/login", LoginHandler(svc, issuer))
	router.Handler(http.MethodGet, "/auth", RequireAuth(AuthInfoHandler(), issuer))

	slog.Info("server started", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, RequestLogger(router)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
