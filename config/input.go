package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionTurnLeft
	ActionTurnRight
	ActionFaster // Down / S: tuck and gain speed
	ActionSlower // Up / W: dig the edges in and scrub speed
	ActionJump
	ActionStart
	ActionConfirm
	ActionBackspace
	ActionToggleCollision // Only honoured with the debug flag
	ActionCount           // Must be last - used for array sizing
)
