package core

// CommandKind represents a semantic player command, abstracted from the
// physical event (key press, mouse click, dropdown change) that produced it.
type CommandKind int

const (
	CommandNone        CommandKind = iota
	CommandSelect                  // Select a symbol by ID (dropdown change)
	CommandSelectIndex             // Select the N-th playable symbol (1..6 keys)
	CommandSelectNext              // Move the selection to the next symbol
	CommandSelectPrev              // Move the selection to the previous symbol
	CommandSpin                    // Press the spin button
	CommandClick                   // Click at a logical position
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "None"
	case CommandSelect:
		return "Select"
	case CommandSelectIndex:
		return "SelectIndex"
	case CommandSelectNext:
		return "SelectNext"
	case CommandSelectPrev:
		return "SelectPrev"
	case CommandSpin:
		return "Spin"
	case CommandClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// Command is a single queued input command. Only the fields relevant to
// Kind are set.
type Command struct {
	Kind     CommandKind
	SymbolID string // CommandSelect
	Index    int    // CommandSelectIndex, zero-based
	X, Y     int    // CommandClick, logical coordinates
}

// SelectCommand builds a CommandSelect.
func SelectCommand(id string) Command {
	return Command{Kind: CommandSelect, SymbolID: id}
}

// SelectIndexCommand builds a CommandSelectIndex.
func SelectIndexCommand(i int) Command {
	return Command{Kind: CommandSelectIndex, Index: i}
}

// SpinCommand builds a CommandSpin.
func SpinCommand() Command {
	return Command{Kind: CommandSpin}
}

// ClickCommand builds a CommandClick at a logical position.
func ClickCommand(x, y int) Command {
	return Command{Kind: CommandClick, X: x, Y: y}
}
