package embed

import "log/slog"

// Channel is a one-way, fire-and-forget message pipe into an embedded frame.
// No acknowledgement is awaited and delivery is best effort.
type Channel interface {
	Post(message []byte, targetOrigin string)
}

// Frame models an embedded browsing context. Messages posted before the frame
// finishes loading are dropped silently.
type Frame struct {
	loaded    bool
	delivered []Message
	dropped   int
}

type Message struct {
	Body         []byte
	TargetOrigin string
}

func NewFrame() *Frame {
	return &Frame{}
}

func (f *Frame) MarkLoaded() { f.loaded = true }

func (f *Frame) Loaded() bool { return f.loaded }

func (f *Frame) Post(message []byte, targetOrigin string) {
	if !f.loaded {
		f.dropped++
		slog.Debug("embed: frame not loaded, command dropped", "message", string(message))
		return
	}
	body := make([]byte, len(message))
	copy(body, message)
	f.delivered = append(f.delivered, Message{Body: body, TargetOrigin: targetOrigin})
}

func (f *Frame) Delivered() []Message {
	out := make([]Message, len(f.delivered))
	copy(out, f.delivered)
	return out
}

func (f *Frame) Dropped() int { return f.dropped }
