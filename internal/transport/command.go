package transport

// Command is a transport command without arguments.
type Command int

const (
	CmdPlay Command = iota
	CmdPause
	CmdResume
	CmdToggle
	CmdStop
	CmdNext
	CmdPrevious
	CmdFirst
	CmdLast
)

func (c Command) String() string {
	switch c {
	case CmdPlay:
		return "play"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdToggle:
		return "toggle"
	case CmdStop:
		return "stop"
	case CmdNext:
		return "next"
	case CmdPrevious:
		return "previous"
	case CmdFirst:
		return "first"
	case CmdLast:
		return "last"
	case cmdSeek:
		return "seek"
	default:
		return "unknown"
	}
}

// cmdSeek only appears in transition errors.
const cmdSeek Command = -1
