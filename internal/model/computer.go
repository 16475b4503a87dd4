package model

// ComputerAction identifies what a computer option does when activated.
type ComputerAction int32

const (
	ActionNone ComputerAction = iota
	ActionDownloadSoftware
)

// ComputerFailure identifies what happens on a failed hack attempt.
type ComputerFailure int32

const (
	FailAlarm ComputerFailure = iota
	FailDamage
	FailManhacks
)

// ComputerOption is one selectable entry on a terminal.
type ComputerOption struct {
	Name     string
	Action   ComputerAction
	Security int32 // extra security on top of the terminal's own
}

// Computer is a terminal entity placed on a console tile.
// Mission start handlers install terminals with a download option and
// bind them to the mission so completing the download advances it.
type Computer struct {
	Name       string
	Security   int32
	MissionUID int64
	PosX       int32 // tile position within the loaded chunk window
	PosY       int32
	Options    []ComputerOption
	Failures   []ComputerFailure
}

// AddOption appends a selectable action to the terminal.
func (c *Computer) AddOption(name string, action ComputerAction, security int32) {
	c.Options = append(c.Options, ComputerOption{Name: name, Action: action, Security: security})
}

// AddFailure appends a failure mode triggered by failed hacks.
func (c *Computer) AddFailure(f ComputerFailure) {
	c.Failures = append(c.Failures, f)
}
