package view

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editableDraft is the field-by-field view of a domain draft (sale.Draft,
// expense.Draft, bankincome.Draft) the form writes into.
type editableDraft interface {
	Get(field string) string
	Set(field, value string) error
}

type fieldKind int

const (
	fieldText fieldKind = iota
	// Cycles through Options with left/right.
	fieldChoice
	// Toggles between "true" and "false" with space.
	fieldFlag
)

type choice struct {
	Value string
	Label string
}

type formField struct {
	Key         string
	Label       string
	Placeholder string
	Kind        fieldKind
	Options     []choice
}

// draftForm edits a draft in place. Every keystroke is written through
// Draft.Set, and the inputs are then re-read from the draft so derived values
// (the IVA) show up while typing.
type draftForm struct {
	fields []formField
	inputs []textinput.Model
	focus  int
	active bool
	draft  editableDraft
	err    error
}

func newDraftForm(fields []formField, draft editableDraft) draftForm {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 32
		inputs[i] = ti
	}

	f := draftForm{fields: fields, inputs: inputs, draft: draft}
	f.sync()

	return f
}

func (f *draftForm) Focus() tea.Cmd {
	f.active = true
	return f.focusField(f.focus)
}

func (f *draftForm) Blur() {
	f.active = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *draftForm) focusField(i int) tea.Cmd {
	f.focus = i
	for j := range f.inputs {
		f.inputs[j].Blur()
	}

	if f.fields[i].Kind != fieldText {
		return nil
	}

	return f.inputs[i].Focus()
}

// sync copies the draft into every input except the one being typed in.
func (f *draftForm) sync() {
	for i, field := range f.fields {
		if f.active && i == f.focus {
			continue
		}

		f.inputs[i].SetValue(f.draft.Get(field.Key))
	}
}

func (f *draftForm) set(key, value string) {
	if err := f.draft.Set(key, value); err != nil {
		f.err = err
		return
	}

	f.sync()
}

// Update handles one key and reports whether the user asked to submit.
func (f draftForm) Update(msg tea.KeyMsg) (draftForm, tea.Cmd, bool) {
	last := len(f.fields) - 1
	field := f.fields[f.focus]

	next := -1

	switch msg.String() {
	case "ctrl+s":
		return f, nil, true
	case "enter":
		if f.focus == last {
			return f, nil, true
		}

		next = f.focus + 1
	case "tab", "down":
		next = (f.focus + 1) % len(f.fields)
	case "shift+tab", "up":
		next = (f.focus + len(f.fields) - 1) % len(f.fields)
	}

	if next >= 0 {
		cmd := f.focusField(next)
		return f, cmd, false
	}

	switch field.Kind {
	case fieldChoice:
		switch msg.String() {
		case "left", "h":
			f.set(field.Key, f.cycle(field, -1))
		case "right", "l", " ":
			f.set(field.Key, f.cycle(field, 1))
		}

		return f, nil, false
	case fieldFlag:
		if msg.String() == " " || msg.String() == "x" {
			on, _ := strconv.ParseBool(f.draft.Get(field.Key))
			f.set(field.Key, strconv.FormatBool(!on))
		}

		return f, nil, false
	}

	var cmd tea.Cmd

	before := f.inputs[f.focus].Value()
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	if after := f.inputs[f.focus].Value(); after != before {
		f.set(field.Key, after)
	}

	return f, cmd, false
}

// cycle returns the option step positions away from the current value. An
// empty value sits before the first option.
func (f draftForm) cycle(field formField, step int) string {
	n := len(field.Options)
	if n == 0 {
		return ""
	}

	cur := slices.IndexFunc(field.Options, func(c choice) bool {
		return c.Value == f.draft.Get(field.Key)
	})
	if cur < 0 && step < 0 {
		cur = 0
	}

	return field.Options[((cur+step)%n+n)%n].Value
}

func (f draftForm) View() string {
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Width(22)

	for i, field := range f.fields {
		cursor := "  "
		if f.active && i == f.focus {
			cursor = activeStyle("> ")
		}

		var value string

		switch field.Kind {
		case fieldChoice:
			value = "< " + choiceLabel(field, f.draft.Get(field.Key)) + " >"
		case fieldFlag:
			box := "[ ]"
			if on, _ := strconv.ParseBool(f.draft.Get(field.Key)); on {
				box = "[x]"
			}

			value = box
		default:
			value = f.inputs[i].View()
		}

		fmt.Fprintf(&b, "%s%s%s\n", cursor, labelStyle.Render(field.Label), value)
	}

	if f.err != nil {
		b.WriteString("\n" + errorStyle.Render(f.err.Error()) + "\n")
	}

	return b.String()
}

func choiceLabel(field formField, value string) string {
	for _, c := range field.Options {
		if c.Value == value {
			return c.Label
		}
	}

	return "Seleccionar..."
}
