package app

import "snake/internal/core"

// Name is the GUI frontend's registry key.
const Name = "gui"

// CommandBuffer collects commands between sim ticks. Ebiten reports key
// presses per frame and frames outnumber ticks, so presses are queued until
// the next tick drains them.
type CommandBuffer struct {
	cmds []core.Command
}

var _ core.InputSource = (*CommandBuffer)(nil)

// Push queues cmd.
func (b *CommandBuffer) Push(cmd core.Command) { b.cmds = append(b.cmds, cmd) }

// Len returns the number of queued commands.
func (b *CommandBuffer) Len() int { return len(b.cmds) }

// Poll returns the queued commands in press order and empties the buffer.
func (b *CommandBuffer) Poll() []core.Command {
	if len(b.cmds) == 0 {
		return nil
	}
	out := b.cmds
	b.cmds = nil
	return out
}
