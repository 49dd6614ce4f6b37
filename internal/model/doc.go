package model

// Package model defines the domain values shared across the app: calendar
// dates with day arithmetic, user-entered date ranges and the gap status
// enum. Values are small and copied freely; nothing here holds state.
