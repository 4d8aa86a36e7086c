package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatfield/internal/anim"
	"github.com/alexisbeaulieu97/floatfield/internal/logger"
	"github.com/alexisbeaulieu97/floatfield/internal/styles"
	"github.com/alexisbeaulieu97/floatfield/pkg/field"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive floating-label field demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(flags)
		},
	}
}

func runDemo(flags *rootFlags) error {
	log, err := flags.newLogger()
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(newDemoModel(log), tea.WithAltScreen()).Run()
	return err
}

type demoModel struct {
	fields []*field.Field
	focus  int
	log    *logger.Logger
}

func newDemoModel(log *logger.Logger) demoModel {
	name := field.New(
		field.WithPlaceholder("Full name"),
		field.WithTitleLabel(field.NewLabel("Full name")),
		field.WithLogger(log.WithComponent("name")),
	)
	name.SetDepth(styles.Depth2)

	email := field.New(
		field.WithPlaceholder("Email address"),
		field.WithTitleLabel(field.NewLabel("Email address")),
		field.WithDetailLabel(field.NewLabel("must contain an @ sign")),
		field.WithLogger(log.WithComponent("email")),
	)
	email.SetDepth(styles.Depth2)

	return demoModel{
		fields: []*field.Field{name, email},
		log:    log,
	}
}

func (m demoModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.fields)+1)
	for _, f := range m.fields {
		cmds = append(cmds, f.Init())
	}
	cmds = append(cmds, m.fields[0].Focus())
	return tea.Batch(cmds...)
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab:
			return m.cycleFocus(msg.Type == tea.KeyShiftTab)
		}

		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd

	case anim.FrameMsg:
		// Frames fan out to every field so superseded labels settle too.
		cmds := make([]tea.Cmd, 0, len(m.fields))
		for i, f := range m.fields {
			var cmd tea.Cmd
			m.fields[i], cmd = f.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) == 0 {
			return m, nil
		}
		return m, cmds[0]
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m demoModel) cycleFocus(backwards bool) (tea.Model, tea.Cmd) {
	m.fields[m.focus].Blur()
	m.validate(m.focus)

	if backwards {
		m.focus = (m.focus + len(m.fields) - 1) % len(m.fields)
	} else {
		m.focus = (m.focus + 1) % len(m.fields)
	}
	return m, m.fields[m.focus].Focus()
}

// validate flips the email field's detail label based on its content.
func (m demoModel) validate(i int) {
	f := m.fields[i]
	if f.DetailLabel() == nil {
		return
	}

	valid := !f.HasText() || strings.Contains(f.Value(), "@")
	f.SetDetailHidden(valid)
	if !valid {
		m.log.Info("email field failed validation")
	}
}

func (m demoModel) View() string {
	help := lipgloss.NewStyle().Faint(true).Render("tab: next field • esc: quit")

	rows := make([]string, 0, len(m.fields)*2+1)
	for _, f := range m.fields {
		rows = append(rows, f.View(), "")
	}
	rows = append(rows, help)

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
