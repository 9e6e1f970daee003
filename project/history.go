// SPDX-License-Identifier: EPL-2.0

package project

import "fmt"

// DefaultHistoryLimit caps the undo and redo stacks. Oldest entries
// are trimmed first.
const DefaultHistoryLimit = 256

// Command is one undoable edit. Execute is called for both the first
// run and every redo; it must bring the project to the same state each
// time. Undo reverses exactly what the last Execute did.
type Command interface {
	Name() string
	Execute(p *Project) error
	Undo(p *Project) error
}

// History runs commands against a project and keeps the undo/redo
// stacks.
type History struct {
	project   *Project
	undoStack []Command
	redoStack []Command
	limit     int
	executing bool
}

func NewHistory(p *Project) *History {
	return &History{project: p, limit: DefaultHistoryLimit}
}

// SetLimit changes the stack cap. Values below 1 are ignored.
func (h *History) SetLimit(n int) {
	if n >= 1 {
		h.limit = n
	}
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Do executes cmd. On success it is pushed onto the undo stack and the
// redo stack is cleared; on failure the history is left untouched. A
// command must not issue further commands from inside Execute or Undo.
func (h *History) Do(cmd Command) error {
	if h.executing {
		return ErrHistoryBusy
	}
	h.executing = true
	defer func() { h.executing = false }()

	if err := cmd.Execute(h.project); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}

	h.undoStack = trim(append(h.undoStack, cmd), h.limit)
	h.redoStack = h.redoStack[:0]

	return nil
}

// Undo reverses the most recent command. With an empty stack the
// project is untouched and ErrNothingToUndo is returned, so callers
// never mistake the call for a completed undo.
func (h *History) Undo() error {
	if h.executing {
		return ErrHistoryBusy
	}
	if len(h.undoStack) == 0 {
		return ErrNothingToUndo
	}
	h.executing = true
	defer func() { h.executing = false }()

	cmd := h.undoStack[len(h.undoStack)-1]
	if err := cmd.Undo(h.project); err != nil {
		return fmt.Errorf("undo %s: %w", cmd.Name(), err)
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = trim(append(h.redoStack, cmd), h.limit)

	return nil
}

// Redo re-executes the most recently undone command. With an empty
// stack the project is untouched and ErrNothingToRedo is returned.
func (h *History) Redo() error {
	if h.executing {
		return ErrHistoryBusy
	}
	if len(h.redoStack) == 0 {
		return ErrNothingToRedo
	}
	h.executing = true
	defer func() { h.executing = false }()

	cmd := h.redoStack[len(h.redoStack)-1]
	if err := cmd.Execute(h.project); err != nil {
		return fmt.Errorf("redo %s: %w", cmd.Name(), err)
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = trim(append(h.undoStack, cmd), h.limit)

	return nil
}

// trim drops the oldest entries once the stack exceeds limit.
func trim(stack []Command, limit int) []Command {
	if len(stack) > limit {
		copy(stack, stack[len(stack)-limit:])
		stack = stack[:limit]
	}
	return stack
}
