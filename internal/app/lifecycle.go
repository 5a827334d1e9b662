package app

import (
	"fyne.io/fyne/v2"

	"dessert-clicker/internal/logger"
	"dessert-clicker/internal/session"
	"dessert-clicker/internal/shutdown"
)

// Lifecycle logs the window lifecycle. The hooks carry no sales behaviour.
type Lifecycle struct {
	session    *session.Session
	guiManager shutdown.Shutdownable
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(sess *session.Session, gm shutdown.Shutdownable, log logger.Logger) *Lifecycle {
	l := &Lifecycle{
		session:    sess,
		guiManager: gm,
		logger:     log,
	}
	l.logEvent("created")
	return l
}

// Install registers the hooks on the fyne lifecycle.
func (l *Lifecycle) Install(lc fyne.Lifecycle) {
	lc.SetOnStarted(func() { l.logEvent("started") })
	lc.SetOnEnteredForeground(func() { l.logEvent("resumed") })
	lc.SetOnExitedForeground(func() { l.logEvent("paused") })
	lc.SetOnStopped(func() {
		l.logEvent("stopped")
		l.Shutdown()
	})
}

func (l *Lifecycle) logEvent(event string) {
	l.logger.Debug("Lifecycle", event, map[string]interface{}{
		"session_id": l.session.ID(),
	})
}

// Shutdown tears down the window state and ends the session. It runs once.
func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		l.guiManager.Shutdown()
	}

	l.session.Shutdown()
	l.logEvent("destroyed")
}
