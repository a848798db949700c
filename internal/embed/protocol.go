package embed

import (
	"encoding/json"
	"fmt"
)

// Action is a provider-neutral player instruction.
type Action string

const (
	ActionPlay  Action = "play"
	ActionPause Action = "pause"
)

// TargetOrigin is the origin every command is addressed to. Embed sources are
// fixed by the site configuration, never supplied by visitors.
const TargetOrigin = "*"

// Protocol encodes player actions into the message format a remote embed expects.
type Protocol interface {
	Name() string
	Encode(action Action) ([]byte, error)
}

// Command is the iframe API message accepted by YouTube-style players.
type Command struct {
	Event string `json:"event"`
	Func  string `json:"func"`
	Args  []any  `json:"args"`
}

const (
	FuncPlayVideo  = "playVideo"
	FuncPauseVideo = "pauseVideo"
)

type YouTubeProtocol struct{}

func (YouTubeProtocol) Name() string { return "youtube" }

func (YouTubeProtocol) Encode(action Action) ([]byte, error) {
	cmd := Command{Event: "command", Args: []any{}}
	switch action {
	case ActionPlay:
		cmd.Func = FuncPlayVideo
	case ActionPause:
		cmd.Func = FuncPauseVideo
	default:
		return nil, fmt.Errorf("unsupported action %q", action)
	}
	return json.Marshal(cmd)
}

// VimeoProtocol speaks the Vimeo player postMessage API.
type VimeoProtocol struct{}

type vimeoMethod struct {
	Method string `json:"method"`
}

func (VimeoProtocol) Name() string { return "vimeo" }

func (VimeoProtocol) Encode(action Action) ([]byte, error) {
	switch action {
	case ActionPlay, ActionPause:
		return json.Marshal(vimeoMethod{Method: string(action)})
	default:
		return nil, fmt.Errorf("unsupported action %q", action)
	}
}

// ProtocolByName returns the protocol registered under name, defaulting to YouTube.
func ProtocolByName(name string) (Protocol, error) {
	switch name {
	case "", "youtube":
		return YouTubeProtocol{}, nil
	case "vimeo":
		return VimeoProtocol{}, nil
	default:
		return nil, fmt.Errorf("unknown embed protocol %q", name)
	}
}
