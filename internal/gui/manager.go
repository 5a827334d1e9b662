package gui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"golang.org/x/text/message"

	"dessert-clicker/internal/assets"
	"dessert-clicker/internal/gui/components"
	"dessert-clicker/internal/i18n"
	"dessert-clicker/internal/logger"
	"dessert-clicker/internal/session"
)

// Manager owns the widgets of the main window. All methods must be called on
// the fyne event goroutine.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	printer    *message.Printer
	currency   string
	resolver   *assets.Resolver
	isShutdown bool

	appBar  *components.AppBar
	dessert *components.DessertImage
	info    *components.TransactionInfo

	saleHandler func()
}

func NewManager(window fyne.Window, log logger.Logger, printer *message.Printer, currency string, resolver *assets.Resolver) *Manager {
	m := &Manager{
		window:   window,
		logger:   log,
		printer:  printer,
		currency: currency,
		resolver: resolver,
		appBar:   components.NewAppBar(printer.Sprintf(i18n.AppTitle), printer.Sprintf(i18n.Share)),
		info:     components.NewTransactionInfo(printer.Sprintf(i18n.DessertsSold), printer.Sprintf(i18n.TotalRevenue)),
	}
	m.dessert = components.NewDessertImage(resolver.Resource(assets.Placeholder), m.onDessertTapped)

	log.Debug("GUIManager", "initialized", map[string]interface{}{
		"image_size": components.DessertImageSize,
	})

	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	background := canvas.NewImageFromResource(m.resolver.Resource(assets.Background))
	background.FillMode = canvas.ImageFillStretch

	bakery := container.NewStack(background, container.NewCenter(m.dessert))

	return container.NewBorder(
		container.NewPadded(m.appBar.GetContainer()),
		m.info.GetContainer(),
		nil, nil,
		bakery,
	)
}

func (m *Manager) SetSaleHandler(handler func()) {
	m.saleHandler = handler
}

func (m *Manager) SetShareHandler(handler func()) {
	m.appBar.SetShareHandler(func() {
		m.logger.Debug("GUIManager", "share requested", nil)
		handler()
	})
}

// Render shows state: the active dessert and the running totals.
func (m *Manager) Render(state session.State) {
	m.dessert.SetResource(m.resolver.Resource(state.Tier.Image))
	m.info.SetSold(state.UnitsSold)
	m.info.SetRevenue(m.printer.Sprintf(i18n.Revenue, strconv.Itoa(state.TotalRevenue), m.currency))
}

// ShowNotice displays a non-fatal message to the user.
func (m *Manager) ShowNotice(title, message string) {
	m.logger.Debug("GUIManager", "notice shown", map[string]interface{}{
		"title": title,
	})
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) onDessertTapped() {
	if m.isShutdown || m.saleHandler == nil {
		return
	}
	m.saleHandler()
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
