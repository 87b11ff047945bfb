package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resto-client/internal/api"
	"resto-client/internal/app"
	"resto-client/internal/config"
	"resto-client/internal/logger"
	"resto-client/internal/router"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	client := api.NewClient(cfg.APIBaseURL, api.WithTimeout(cfg.HTTPTimeout))
	a := app.New(client, cfg.PollInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Login(ctx, cfg.ClientUser, cfg.ClientPass); err != nil {
		logger.L().Fatal("login failed", zap.Error(err))
	}

	user, _ := a.Session.User()
	fmt.Printf("logged in as %s (%s), landing on %s\n", user.FullName, user.Role, a.Router.Active())

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := a.Logout(context.Background()); err != nil {
				logger.L().Warn("logout request failed", zap.Error(err))
			}
			return
		case ev, ok := <-a.ReadyOrders():
			if !ok {
				continue
			}
			fmt.Printf("order #%d is ready (table %d)\n", ev.OrderID, ev.TableID)
		case <-ticker.C:
			if a.Router.Active() != router.TabOrders {
				continue
			}
			if err := a.Board.Refresh(ctx); err != nil {
				logger.L().Warn("board refresh failed", zap.Error(err))
				continue
			}
			fmt.Printf("orders: %d active / %d total\n", a.Board.ActiveCount(), a.Board.TotalCount())
		}
	}
}
