package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/opcua-runtime/sys"
	"github.com/wippyai/opcua-runtime/ua"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseModel struct {
	input    textinput.Model
	result   string
	isErr    bool
	selected int
}

func runInteractive() error {
	ti := textinput.New()
	ti.Placeholder = "value to round-trip"
	ti.Focus()

	p := tea.NewProgram(browseModel{input: ti})
	_, err := p.Run()
	return err
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
				m.result = ""
			}
			return m, nil
		case "down":
			if m.selected < int(sys.TypeCount)-1 {
				m.selected++
				m.result = ""
			}
			return m, nil
		case "enter":
			result, err := roundTrip(sys.TypeIndex(m.selected), m.input.Value())
			if err != nil {
				m.result = err.Error()
				m.isErr = true
			} else {
				m.result = result
				m.isErr = false
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	s := titleStyle.Render("OPC UA data types") + "\n\n"

	for i := range sys.Types {
		dt := &sys.Types[i]
		line := fmt.Sprintf("%-12s ns=0;i=%d", dt.Name, dt.NodeID)
		if i == m.selected {
			s += selectedStyle.Render("> "+line) + "\n"
		} else {
			s += typeStyle.Render("  "+line) + "\n"
		}
	}

	dt := &sys.Types[m.selected]
	s += fmt.Sprintf("\nsize %d, align %d, pointer-free %v\n\n", dt.MemSize, dt.Align, dt.PointerFree)
	s += m.input.View() + "\n"

	if m.result != "" {
		if m.isErr {
			s += errorStyle.Render(m.result) + "\n"
		} else {
			s += resultStyle.Render("wrapped and read back: "+m.result) + "\n"
		}
	}

	s += helpStyle.Render("\n↑/↓ select type · enter round-trip value · esc quit")
	return s
}

// roundTrip parses input as the selected type, wraps it through the
// corresponding transparent wrapper, and reads it back.
func roundTrip(idx sys.TypeIndex, input string) (string, error) {
	switch idx {
	case sys.TypeIndexBoolean:
		v, err := strconv.ParseBool(input)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(ua.NewBoolean(v).Value()), nil
	case sys.TypeIndexSByte:
		v, err := strconv.ParseInt(input, 10, 8)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(ua.NewSByte(int8(v)).Value()), 10), nil
	case sys.TypeIndexByte:
		v, err := strconv.ParseUint(input, 10, 8)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(ua.NewByte(uint8(v)).Value()), 10), nil
	case sys.TypeIndexInt16:
		v, err := strconv.ParseInt(input, 10, 16)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(ua.NewInt16(int16(v)).Value()), 10), nil
	case sys.TypeIndexUInt16:
		v, err := strconv.ParseUint(input, 10, 16)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(ua.NewUInt16(uint16(v)).Value()), 10), nil
	case sys.TypeIndexInt32:
		v, err := strconv.ParseInt(input, 10, 32)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(ua.NewInt32(int32(v)).Value()), 10), nil
	case sys.TypeIndexUInt32:
		v, err := strconv.ParseUint(input, 10, 32)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(ua.NewUInt32(uint32(v)).Value()), 10), nil
	case sys.TypeIndexInt64:
		v, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(ua.NewInt64(v).Value(), 10), nil
	case sys.TypeIndexUInt64:
		v, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(ua.NewUInt64(v).Value(), 10), nil
	case sys.TypeIndexFloat:
		v, err := strconv.ParseFloat(input, 32)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(float64(ua.NewFloat(float32(v)).Value()), 'g', -1, 32), nil
	case sys.TypeIndexDouble:
		v, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(ua.NewDouble(v).Value(), 'g', -1, 64), nil
	case sys.TypeIndexStatusCode:
		v, err := strconv.ParseUint(input, 0, 32)
		if err != nil {
			return "", err
		}
		return ua.NewStatusCode(sys.StatusCode(v)).String(), nil
	default:
		return "", fmt.Errorf("no wrapper for type index %d", idx)
	}
}
