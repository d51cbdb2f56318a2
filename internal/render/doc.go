// Package render turns normalized variables into display text: per-mode
// cells, type icons, code syntax tags, back-reference listings and the
// lipgloss terminal table and palette.
package render
