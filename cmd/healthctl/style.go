package main

import "charm.land/lipgloss/v2"

var (
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E")).Bold(true)
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	headingStyle  = lipgloss.NewStyle().Underline(true)
)
