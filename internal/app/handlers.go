package app

import (
	"golang.org/x/text/message"

	"dessert-clicker/internal/i18n"
	"dessert-clicker/internal/logger"
	"dessert-clicker/internal/session"
	"dessert-clicker/internal/share"
)

// View is the part of the window the handlers drive.
type View interface {
	Render(state session.State)
	ShowNotice(title, message string)
}

type Handlers struct {
	session   *session.Session
	formatter *share.Formatter
	sharer    share.Sharer
	view      View
	printer   *message.Printer
	logger    logger.Logger

	// confirmation is shown after a successful share when non-empty.
	confirmation string
}

func NewHandlers(sess *session.Session, formatter *share.Formatter, sharer share.Sharer,
	view View, printer *message.Printer, log logger.Logger) *Handlers {
	return &Handlers{
		session:   sess,
		formatter: formatter,
		sharer:    sharer,
		view:      view,
		printer:   printer,
		logger:    log,
	}
}

func (h *Handlers) SetConfirmation(text string) {
	h.confirmation = text
}

func (h *Handlers) HandleSale() {
	h.view.Render(h.session.RecordSale())
}

// HandleShare exports the sales summary. A failing share target only earns
// the user a notice.
func (h *Handlers) HandleShare() {
	state := h.session.State()
	text := h.formatter.Summary(state.UnitsSold, state.TotalRevenue)

	if err := h.sharer.Share(text); err != nil {
		h.logger.Warning("Handlers", "share failed", map[string]interface{}{
			"session_id": h.session.ID(),
			"error":      err.Error(),
		})
		h.view.ShowNotice(h.printer.Sprintf(i18n.Share), h.printer.Sprintf(i18n.SharingNotAvailable))
		return
	}

	h.logger.Info("Handlers", "summary shared", map[string]interface{}{
		"session_id":    h.session.ID(),
		"units_sold":    state.UnitsSold,
		"total_revenue": state.TotalRevenue,
	})

	if h.confirmation != "" {
		h.view.ShowNotice(h.printer.Sprintf(i18n.Share), h.confirmation)
	}
}
