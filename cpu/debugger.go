package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu *Cpu

	prevPC uint16
	err    error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd { return nil }

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			if _, err := m.cpu.Tick(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders 16 bytes of the address space starting at start, with
// the current PC bracketed.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Bus.Read(addr, true)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{m.cpu.FlagZ(), m.cpu.FlagN(), m.cpu.FlagH(), m.cpu.FlagC()} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
AF: %04x
BC: %04x
DE: %04x
HL: %04x
SP: %04x
IME: %v  HALT: %v
Z N H C
`,
		m.cpu.PC, m.prevPC,
		m.cpu.AF, m.cpu.BC, m.cpu.DE, m.cpu.HL, m.cpu.SP,
		m.cpu.IME, m.cpu.Halted,
	) + flags
}

// pageTable renders five 16-byte rows: the row holding the current PC and
// two rows on either side of it.
func (m model) pageTable() string {
	base := m.cpu.PC &^ 0x0F
	var lines []string
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(uint16(int32(base)+int32(i)*16)))
	}
	return strings.Join(lines, "\n")
}

// currentOpcode returns the opcode table entry at PC, peeking past the
// 0xCB prefix byte when present, without mutating Cpu state.
func (m model) currentOpcode() any {
	b := m.cpu.Bus.Read(m.cpu.PC, true)
	if b == 0xCB {
		return cbOpcodes[m.cpu.Bus.Read(m.cpu.PC+1, true)]
	}
	return opcodes[b]
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(m.currentOpcode()),
	)
}

// Debug starts an interactive TUI that steps the Cpu one instruction at a
// time on space/j, showing the register file and a window of memory
// around PC.
func (c *Cpu) Debug() error {
	final, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
