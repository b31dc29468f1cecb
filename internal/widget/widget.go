package widget

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// FallbackErrorText is shown when an exchange fails without any
// server-supplied error text (network failure, malformed body).
const FallbackErrorText = "Unable to reach the chat service."

// ErrAwaitingReply rejects a submit while an exchange is still in flight.
var ErrAwaitingReply = errors.New("a reply is still pending")

// Responder produces a reply for the given text. A *ResponderError carries
// server-supplied error text; any other error is a transport failure.
type Responder interface {
	Reply(ctx context.Context, text string) (string, error)
}

// ResponderFunc adapts a function to the Responder interface.
type ResponderFunc func(ctx context.Context, text string) (string, error)

func (f ResponderFunc) Reply(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Widget owns the transcript, the input buffer, and the awaiting-reply flag.
// The transcript is append-only and lives as long as the widget. At most one
// exchange is in flight at a time.
type Widget struct {
	mu         sync.Mutex
	responder  Responder
	transcript []Message
	input      string
	awaiting   bool
	nextID     int64
	now        func() time.Time
	onUpdate   func()
}

func New(responder Responder) *Widget {
	return &Widget{
		responder: responder,
		now:       time.Now,
	}
}

// SetUpdateFunc registers a hook called after every transcript or
// awaiting-reply change. The presentation layer uses it to scroll the view
// to the newest entry.
func (w *Widget) SetUpdateFunc(fn func()) {
	w.mu.Lock()
	w.onUpdate = fn
	w.mu.Unlock()
}

func (w *Widget) SetInput(text string) {
	w.mu.Lock()
	w.input = text
	w.mu.Unlock()
}

func (w *Widget) Input() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// Awaiting reports whether an exchange is in flight. While true, further
// submits are rejected and the input control should be disabled.
func (w *Widget) Awaiting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.awaiting
}

// Transcript returns a copy of the stored entries. The typing placeholder is
// never part of the transcript.
func (w *Widget) Transcript() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Message(nil), w.transcript...)
}

// Entries returns the render view: the transcript plus one synthetic typing
// entry while a reply is pending. The placeholder is computed here, not
// stored.
func (w *Widget) Entries() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries := append([]Message(nil), w.transcript...)
	if w.awaiting {
		entries = append(entries, Message{
			Text:      "...",
			Sender:    SenderTyping,
			Timestamp: w.now(),
		})
	}
	return entries
}

// Send submits the current input buffer.
func (w *Widget) Send(ctx context.Context) error {
	w.mu.Lock()
	text := w.input
	w.mu.Unlock()
	return w.Submit(ctx, text)
}

// Keypress handles the confirm key. A modified press signals line-break
// intent and does nothing.
func (w *Widget) Keypress(ctx context.Context, modified bool) error {
	if modified {
		return nil
	}
	return w.Send(ctx)
}

// Submit runs one exchange with the responder. Whitespace-only input is a
// no-op. While a reply is pending, ErrAwaitingReply is returned and nothing
// is mutated. Exchange failures are terminal: they are appended to the
// transcript as error entries, never returned to the caller.
func (w *Widget) Submit(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if err := w.begin(trimmed); err != nil {
		return err
	}

	// The flag must clear on every exit path, including a panicking
	// responder.
	defer w.clearAwaiting()

	reply, err := w.responder.Reply(ctx, trimmed)

	var msg Message
	switch {
	case err == nil:
		msg = Message{Text: reply, Sender: SenderBot}
	default:
		msg = Message{Text: errorText(err), Sender: SenderError}
	}
	w.settle(msg)
	return nil
}

// begin appends the user entry, clears the input buffer, and raises the
// awaiting-reply flag, in that order.
func (w *Widget) begin(trimmed string) error {
	w.mu.Lock()
	if w.awaiting {
		w.mu.Unlock()
		return ErrAwaitingReply
	}

	w.nextID++
	w.transcript = append(w.transcript, Message{
		ID:        w.nextID,
		Text:      trimmed,
		Sender:    SenderUser,
		Timestamp: w.now(),
	})
	w.input = ""
	w.awaiting = true
	fn := w.onUpdate
	w.mu.Unlock()

	if fn != nil {
		fn()
	}
	return nil
}

// settle appends the outcome entry and clears the awaiting-reply flag in one
// step.
func (w *Widget) settle(msg Message) {
	w.mu.Lock()
	w.nextID++
	msg.ID = w.nextID
	msg.Timestamp = w.now()
	w.transcript = append(w.transcript, msg)
	w.awaiting = false
	fn := w.onUpdate
	w.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (w *Widget) clearAwaiting() {
	w.mu.Lock()
	changed := w.awaiting
	w.awaiting = false
	fn := w.onUpdate
	w.mu.Unlock()

	if changed && fn != nil {
		fn()
	}
}

// errorText prefers server-supplied error text over the generic fallback.
// Structured application errors and transport failures render the same way.
func errorText(err error) string {
	var respErr *ResponderError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}
	return FallbackErrorText
}
