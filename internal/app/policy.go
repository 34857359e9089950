package app

import "fmt"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	KickMember
	DropFrame
)

// Policy decides what happens to a connection whose send buffer is full.
type Policy interface {
	OnBackPressure(member SessionSnapshot) BackpressureAction
}

// SimplePolicy kicks slow members. They reconnect and get history replayed.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(SessionSnapshot) BackpressureAction {
	return KickMember
}

// DropPolicy keeps slow members connected and drops the frame.
type DropPolicy struct{}

func (DropPolicy) OnBackPressure(SessionSnapshot) BackpressureAction {
	return DropFrame
}

// NewPolicy maps the backpressure config value to a Policy.
func NewPolicy(name string) (Policy, error) {
	switch name {
	case "", "kick":
		return SimplePolicy{}, nil
	case "drop":
		return DropPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown backpressure policy %q", name)
	}
}
