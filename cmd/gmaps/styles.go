package main

import "github.com/charmbracelet/lipgloss"

var (
	styleBold  = lipgloss.NewStyle().Bold(true)
	styleFaint = lipgloss.NewStyle().Faint(true)
	stylePass  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDollar = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
)
