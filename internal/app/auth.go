package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	authhandler "sumbandila/internal/auth/handler"
	authmetrics "sumbandila/internal/auth/metrics"
	"sumbandila/internal/auth/service"
	"sumbandila/internal/auth/store/user"
	"sumbandila/internal/auth/token"
	"sumbandila/internal/platform/config"
	"sumbandila/internal/platform/redis"
	"sumbandila/pkg/secrets"
)

// BuildAuth assembles the token issuer and credential store.
func BuildAuth(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Service, error) {
	b := newBuilder(NameAuth, cfg, logger)

	users, err := b.userStore(ctx)
	if err != nil {
		return b.fail(err)
	}

	tokens, err := token.NewJWTService(token.Config{
		SigningKey: cfg.Auth.JWTSigningKey,
		Algorithm:  cfg.Auth.JWTAlgorithm,
		Issuer:     cfg.Auth.JWTIssuer,
		TTL:        cfg.Auth.TokenTTL,
	})
	if err != nil {
		return b.fail(err)
	}

	publisher, err := b.auditPublisher()
	if err != nil {
		return b.fail(err)
	}

	svc := service.New(users, tokens, secrets.NewHasher(cfg.Auth.BcryptCost),
		service.WithLogger(b.logger),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(authmetrics.New(b.svc.Registry)),
	)

	b.logger.Info("auth service assembled",
		"user_store", cfg.Auth.UserStore,
		"token_ttl", cfg.Auth.TokenTTL.String(),
	)
	return b.finish(authhandler.New(svc, b.logger)), nil
}

func (b *builder) userStore(ctx context.Context) (service.UserStore, error) {
	switch b.cfg.Auth.UserStore {
	case config.UserStorePostgres:
		pool, err := b.database(ctx)
		if err != nil {
			return nil, err
		}
		return user.NewPostgres(pool.DB()), nil

	case config.UserStoreRedis:
		client, err := redis.New(ctx, b.cfg.Redis)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, errors.New("user_store=redis requires redis.url")
		}
		b.svc.onClose(client.Close)
		b.health.RegisterCheck("redis", client.Health)
		client.RegisterPoolMetrics(b.svc.Registry)
		return user.NewRedis(client.Client), nil

	case config.UserStoreMemory, "":
		b.logger.Warn("using in-memory user store; identities are lost on restart")
		return user.NewInMemoryUserStore(), nil

	default:
		return nil, fmt.Errorf("unknown user store %q", b.cfg.Auth.UserStore)
	}
}
