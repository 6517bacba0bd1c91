// Package tui adapts databind controls to the terminal with bubbletea.
//
// TextInput and Toggle are editable controls that raise change events from their Update
// method, Label renders a pushed string with lipgloss, and Form is the tea.Model hosting
// them. Because every registry call then happens inside the bubbletea update loop, a Form
// satisfies the single-goroutine contract of databind.Registry.
package tui
