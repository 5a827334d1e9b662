package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// AppBar is the title row with the share action.
type AppBar struct {
	container   *fyne.Container
	ShareButton *widget.Button

	shareHandler func()
}

func NewAppBar(title, shareLabel string) *AppBar {
	bar := &AppBar{}

	bar.ShareButton = widget.NewButtonWithIcon(shareLabel, theme.MailSendIcon(), bar.onShare)
	bar.ShareButton.Importance = widget.HighImportance

	titleLabel := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	titleLabel.SizeName = theme.SizeNameHeadingText

	bar.container = container.NewBorder(nil, nil, titleLabel, bar.ShareButton)
	return bar
}

func (b *AppBar) GetContainer() *fyne.Container {
	return b.container
}

func (b *AppBar) SetShareHandler(handler func()) {
	b.shareHandler = handler
}

func (b *AppBar) onShare() {
	if b.shareHandler != nil {
		b.shareHandler()
	}
}
