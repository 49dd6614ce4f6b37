package ui

// Package ui contains the Fyne-based desktop user interface. It forwards
// user actions (add, delete, clear, threshold change) to the range store and
// the threshold setting, and renders the derived rows as a table and a
// timeline. All UI strings are localized via Localization.
