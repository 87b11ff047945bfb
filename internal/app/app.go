package app

import (
	"context"
	"time"

	"resto-client/internal/api"
	"resto-client/internal/board"
	"resto-client/internal/cart"
	"resto-client/internal/catalog"
	"resto-client/internal/logger"
	"resto-client/internal/notify"
	"resto-client/internal/roster"
	"resto-client/internal/router"
	"resto-client/internal/session"

	"go.uber.org/zap"
)

// App is the explicit state container for one client instance. All
// mutable client state lives here with a lifecycle tied to the session,
// instead of ambient globals.
type App struct {
	Client  *api.Client
	Session *session.Session
	Cart    *cart.Cart
	Catalog *catalog.Cache
	Board   *board.Board
	Roster  *roster.Roster
	Router  *router.Router

	pollInterval time.Duration
	watcher      *notify.Watcher
	watchCancel  context.CancelFunc
}

func New(client *api.Client, pollInterval time.Duration) *App {
	a := &App{
		Client:       client,
		Session:      session.New(),
		Catalog:      catalog.New(client),
		Board:        board.New(client),
		Roster:       roster.New(client),
		Router:       router.New(),
		pollInterval: pollInterval,
	}
	a.Cart = cart.New(a.Catalog, client)

	a.Router.Register(router.TabMenu, a.Catalog.RefreshMenu)
	a.Router.Register(router.TabTables, a.Catalog.RefreshTables)
	a.Router.Register(router.TabOrders, a.Board.Refresh)
	a.Router.Register(router.TabEmployees, a.Roster.Refresh)

	return a
}

// Login authenticates, transitions the session, resets the cart, starts
// the ready watcher for waiters and lands on the role's home tab. A
// failed login changes nothing locally.
func (a *App) Login(ctx context.Context, username, password string) error {
	res, err := a.Client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	role, err := session.ParseRole(res.Role)
	if err != nil {
		return err
	}

	a.Session.LoginAs(session.User{
		ID:       res.ID,
		Username: res.Username,
		FullName: res.FullName,
		Role:     role,
	}, res.AccessToken)

	// A fresh login never inherits a previous user's pending order or
	// ready-order stream.
	a.Cart.Clear()
	a.stopWatcher()

	if role == session.RoleWaiter {
		a.startWatcher()
	}

	if err := a.Router.SwitchTo(ctx, router.HomeFor(role)); err != nil {
		// The session is established; a failed landing refresh only
		// means stale data on the first tab.
		logger.FromCtx(ctx).Warn("initial tab refresh failed", zap.Error(err))
	}
	return nil
}

// Logout fires the backend logout and tears local state down regardless
// of the outcome: watcher cancelled, cart cleared, session anonymous.
func (a *App) Logout(ctx context.Context) error {
	err := a.Client.Logout(ctx)

	a.stopWatcher()
	a.Cart.Clear()
	a.Session.Logout()

	return err
}

// ReadyOrders exposes the watcher's event stream; nil while no watcher
// is running.
func (a *App) ReadyOrders() <-chan notify.Event {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Events()
}

func (a *App) startWatcher() {
	a.stopWatcher()

	ctx, cancel := context.WithCancel(context.Background())
	a.watchCancel = cancel
	a.watcher = notify.NewWatcher(a.Client, a.pollInterval)
	a.watcher.Start(ctx)
}

func (a *App) stopWatcher() {
	if a.watchCancel != nil {
		a.watchCancel()
		a.watchCancel = nil
	}
	a.watcher = nil
}
