package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"golang.org/x/text/message"

	"dessert-clicker/internal/assets"
	"dessert-clicker/internal/catalog"
	"dessert-clicker/internal/config"
	"dessert-clicker/internal/gui"
	"dessert-clicker/internal/i18n"
	"dessert-clicker/internal/logger"
	"dessert-clicker/internal/session"
	"dessert-clicker/internal/share"
	"dessert-clicker/internal/shutdown"
)

const (
	AppID      = "com.example.dessertclicker"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	session    *session.Session
	handlers   *Handlers
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
	printer    *message.Printer
	logger     logger.Logger
}

func NewApplication(cfg config.Config, c *catalog.Catalog, log logger.Logger) (*Application, error) {
	return newApplication(fyneapp.NewWithID(AppID), cfg, c, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, c *catalog.Catalog, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	printer := i18n.Printer(cfg.Language)

	window := fyneApp.NewWindow(printer.Sprintf(i18n.AppTitle))
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"language":      i18n.Match(cfg.Language).String(),
		"share_target":  cfg.ShareTarget,
		"tiers":         c.Len(),
	})

	sharer, confirmation, err := newSharer(fyneApp, cfg, printer)
	if err != nil {
		return nil, err
	}

	resolver := assets.NewResolver()
	warnMissingArtwork(c, resolver, log)

	sess := session.New(c, log)
	guiManager := gui.NewManager(window, log, printer, cfg.Currency, resolver)

	handlers := NewHandlers(sess, share.NewFormatter(printer, cfg.Currency), sharer, guiManager, printer, log)
	handlers.SetConfirmation(confirmation)

	guiManager.SetSaleHandler(handlers.HandleSale)
	guiManager.SetShareHandler(handlers.HandleShare)
	guiManager.Render(sess.State())

	lifecycle := NewLifecycle(sess, guiManager, log)
	lifecycle.Install(fyneApp.Lifecycle())

	shutdownMgr := shutdown.NewManager(log, shutdown.DefaultTimeout)
	shutdownMgr.Register("session", shutdown.Func(func() { fyne.Do(sess.Shutdown) }))
	shutdownMgr.Register("fyne", shutdown.Func(func() { fyne.Do(fyneApp.Quit) }))

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		session:    sess,
		handlers:   handlers,
		lifecycle:  lifecycle,
		shutdown:   shutdownMgr,
		printer:    printer,
		logger:     log,
	}

	application.setupMenus()
	window.SetContent(guiManager.GetMainContainer())

	log.Info("Application", "initialization complete", map[string]interface{}{
		"session_id": sess.ID(),
	})
	return application, nil
}

// warnMissingArtwork flags tiers whose image will render as the placeholder.
func warnMissingArtwork(c *catalog.Catalog, resolver *assets.Resolver, log logger.Logger) {
	for _, tier := range c.Tiers() {
		if !resolver.Has(tier.Image) {
			log.Warning("Application", "no artwork for tier, using placeholder", map[string]interface{}{
				"tier":  tier.Name,
				"image": tier.Image,
			})
		}
	}
}

func newSharer(fyneApp fyne.App, cfg config.Config, printer *message.Printer) (share.Sharer, string, error) {
	switch cfg.ShareTarget {
	case config.ShareClipboard:
		return share.NewClipboardSharer(fyneApp.Clipboard()), printer.Sprintf(i18n.SummaryCopied), nil
	case config.ShareMail:
		return share.NewMailSharer(fyneApp, cfg.ShareEmail, printer.Sprintf(i18n.AppTitle)), "", nil
	default:
		return nil, "", fmt.Errorf("share target %q: %w", cfg.ShareTarget, config.ErrInvalid)
	}
}

func (a *Application) setupMenus() {
	quit := fyne.NewMenuItem(a.printer.Sprintf(i18n.Quit), a.fyneApp.Quit)
	quit.IsQuit = true

	fileMenu := fyne.NewMenu(a.printer.Sprintf(i18n.FileMenu),
		fyne.NewMenuItem(a.printer.Sprintf(i18n.Share), a.handlers.HandleShare),
		fyne.NewMenuItemSeparator(),
		quit,
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// Run shows the window and blocks until the app quits.
func (a *Application) Run() error {
	stop := a.shutdown.Listen()
	defer stop()

	a.window.ShowAndRun()

	// Stopped hooks do not fire on every driver; make sure the session ends.
	a.lifecycle.Shutdown()
	return nil
}
