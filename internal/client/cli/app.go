package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophscan/internal/client/client"
	"github.com/dmitrijs2005/gophscan/internal/client/config"
	"github.com/dmitrijs2005/gophscan/internal/client/repositories/checkinlists"
	"github.com/dmitrijs2005/gophscan/internal/client/services"
	"github.com/dmitrijs2005/gophscan/internal/client/validator"
	"github.com/dmitrijs2005/gophscan/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

var ErrNoEvent = errors.New("no event configured, pass -e or set GOPHSCAN_EVENT")

// tokenClient is the transport plus the ability to swap the device token.
type tokenClient interface {
	client.Client
	SetDeviceToken(token string)
}

type App struct {
	cfg    *config.Config
	logger logging.Logger
	out    io.Writer
	reader *bufio.Reader

	db        *sql.DB
	client    tokenClient
	validator validator.Validator
	queue     services.QueueService
	sync      services.SyncService
	scheduler *services.Scheduler
	lists     checkinlists.Repository

	mu     sync.Mutex
	event  string
	listID int64
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if cfg.Event == "" {
		return nil, ErrNoEvent
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	c, err := client.NewGRPCClient(cfg.AuthorityAddr, cfg.DeviceToken)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	repos := client.NewRepositories(db)
	q := services.NewQueueService(c, db, logger)
	s := services.NewSyncService(db, c, nil, logger)

	return &App{
		cfg:    cfg,
		logger: logger.With("module", "cli"),
		out:    os.Stdout,
		reader: bufio.NewReader(os.Stdin),
		db:     db,
		client: c,
		validator: validator.NewValidator(db, logger, validator.Options{
			Location:         loc,
			MaxRevocationAge: cfg.MaxRevocationAge,
		}),
		queue: q,
		sync:  s,
		scheduler: services.NewScheduler(cfg.Event, c, q, s, nil, logger, services.SchedulerOptions{
			SyncInterval: cfg.SyncInterval,
			PingInterval: cfg.OnlineCheckInterval,
		}),
		lists:  repos.CheckInLists,
		event:  cfg.Event,
		listID: cfg.ListID,
	}, nil
}

func (a *App) Close() error {
	return errors.Join(a.client.Close(), a.db.Close())
}

func (a *App) mode() Mode {
	switch {
	case a.scheduler == nil:
		return ModeDisabled
	case a.scheduler.Online():
		return ModeOnline
	default:
		return ModeOffline
	}
}

func (a *App) selection() (string, int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.event, a.listID
}

func (a *App) selectList(id int64) {
	a.mu.Lock()
	a.listID = id
	a.mu.Unlock()
}

func (a *App) status() string {
	event, list := a.selection()
	return fmt.Sprintf("(%s list %d %s)", event, list, a.mode())
}

// Run starts the background scheduler and serves the REPL until the user
// quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if a.scheduler != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.scheduler.Run(ctx); err != nil {
				a.logger.Error(ctx, "scheduler stopped", "error", err)
			}
		}()
	}

	fmt.Fprintln(a.out, "GophScan scanner (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))

	cancel()
	wg.Wait()
	return nil
}
