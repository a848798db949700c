package embed

import "log/slog"

type State int

const (
	Paused State = iota
	Playing
)

// OverlayVisible reports whether the play overlay shows in state s.
func (s State) OverlayVisible() bool { return s == Paused }

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Player drives a remote embed through its command channel. The overlay play
// button is shown exactly while the player is paused.
type Player struct {
	state    State
	channel  Channel
	protocol Protocol
}

func NewPlayer(channel Channel, protocol Protocol) *Player {
	if protocol == nil {
		protocol = YouTubeProtocol{}
	}
	return &Player{state: Paused, channel: channel, protocol: protocol}
}

func (p *Player) State() State { return p.state }

func (p *Player) OverlayVisible() bool { return p.state.OverlayVisible() }

// Toggle flips between Paused and Playing and posts exactly one command for the
// new state.
func (p *Player) Toggle() State {
	next, action := Playing, ActionPlay
	if p.state == Playing {
		next, action = Paused, ActionPause
	}
	p.state = next
	p.send(action)
	return next
}

func (p *Player) send(action Action) {
	if p.channel == nil {
		return
	}
	msg, err := p.protocol.Encode(action)
	if err != nil {
		slog.Warn("embed: encode command", "protocol", p.protocol.Name(), "action", action, "error", err)
		return
	}
	p.channel.Post(msg, TargetOrigin)
}
