package share

import (
	"errors"
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
)

// ErrUnavailable is returned when the host cannot share.
var ErrUnavailable = errors.New("sharing not available")

// Sharer hands a text summary to a platform sharing mechanism.
type Sharer interface {
	Share(text string) error
}

// ClipboardSharer puts the summary on the system clipboard.
type ClipboardSharer struct {
	clipboard fyne.Clipboard
}

func NewClipboardSharer(clipboard fyne.Clipboard) *ClipboardSharer {
	return &ClipboardSharer{clipboard: clipboard}
}

func (s *ClipboardSharer) Share(text string) error {
	if s.clipboard == nil {
		return fmt.Errorf("no clipboard: %w", ErrUnavailable)
	}
	s.clipboard.SetContent(text)
	return nil
}

// URLOpener opens a URL with the desktop's default handler. fyne.App
// satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// MailSharer opens a pre-filled mail draft.
type MailSharer struct {
	opener    URLOpener
	recipient string
	subject   string
}

func NewMailSharer(opener URLOpener, recipient, subject string) *MailSharer {
	return &MailSharer{opener: opener, recipient: recipient, subject: subject}
}

// MailURL builds the mailto: URL for text.
func (s *MailSharer) MailURL(text string) *url.URL {
	query := url.Values{}
	if s.subject != "" {
		query.Set("subject", s.subject)
	}
	query.Set("body", text)

	return &url.URL{
		Scheme:   "mailto",
		Opaque:   s.recipient,
		RawQuery: query.Encode(),
	}
}

func (s *MailSharer) Share(text string) error {
	if s.opener == nil {
		return fmt.Errorf("no url handler: %w", ErrUnavailable)
	}
	if err := s.opener.OpenURL(s.MailURL(text)); err != nil {
		return fmt.Errorf("open mail draft: %v: %w", err, ErrUnavailable)
	}
	return nil
}
