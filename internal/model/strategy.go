package model

// Strategy is one calming strategy shown in the strategies list.
//
// Strategies are static catalog data; the only mutable aspect is which
// one the user has marked as favorite, and that lives in Settings, not
// here.
type Strategy struct {
	// ID identifies the strategy in settings (favorite_strategy).
	ID string

	// Icon is a short emoji prefix for the list entry.
	Icon string

	// Name is the strategy's display name.
	Name string

	// Description explains the strategy in one or two sentences.
	Description string
}
