package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/vault/compress"
	"github.com/dmitrijs2005/memoryvault/internal/vault/config"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
	"github.com/dmitrijs2005/memoryvault/internal/vault/services"
	"github.com/dmitrijs2005/memoryvault/internal/vault/store"
	"github.com/dmitrijs2005/memoryvault/internal/vault/viewer"
)

// viewerServer is the part of viewer.Server the app drives.
type viewerServer interface {
	Listen() (net.Listener, error)
	Serve(ctx context.Context, ln net.Listener) error
}

type App struct {
	config        *config.Config
	logger        logging.Logger
	store         io.Closer
	authService   services.AuthService
	uploadService services.UploadService
	fileService   services.FileService
	viewer        viewerServer

	session    models.Session
	reader     *bufio.Reader
	exportBase string

	viewerStop context.CancelFunc
	viewerDone chan error
}

// NewApp opens the store and wires the services. A store that cannot be
// opened is fatal for the run.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	ctx := context.Background()

	engine := store.New(c.DatabasePath, logger)
	if _, err := engine.Initialize(ctx); err != nil {
		return nil, err
	}

	pipeline := compress.NewPipeline(c.MaxImageDimension)
	pipeline.OnStep = func(quality int, size int64) {
		logger.Debug(ctx, "compression step", "quality", quality, "size", size)
	}

	fs := services.NewFileService(engine, c.ViewerAddr)

	return &App{
		config:        c,
		logger:        logger,
		store:         engine,
		authService:   services.NewAuthService(engine, logger),
		uploadService: services.NewUploadService(engine, pipeline, c.MaxUploadBytes, logger),
		fileService:   fs,
		viewer:        viewer.New(c.ViewerAddr, fs, c.ViewerShutdownTimeout, logger),
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the remembered session and serves the REPL until the user
// exits or input ends. The viewer, if started, is stopped on the way out.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	printlnFn("Welcome to Memory Vault (type 'help' for commands)")
	a.restoreSession(ctx)

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Valid()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.session.Email)
}

func (a *App) close(ctx context.Context) {
	a.stopViewer()
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "store close failed", "error", err)
		}
	}
}
