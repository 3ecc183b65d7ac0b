package strategy

import "github.com/yeager/lugn/internal/model"

// catalog is the fixed set of calming strategies, in display order.
var catalog = []model.Strategy{
	{
		ID:          "deep_breathing",
		Icon:        "🫁",
		Name:        "Deep breathing",
		Description: "Slow, deep breaths to calm your nervous system",
	},
	{
		ID:          "hold_ice",
		Icon:        "🧊",
		Name:        "Hold ice",
		Description: "Hold an ice cube — the cold sensation helps ground you",
	},
	{
		ID:          "grounding_54321",
		Icon:        "5️⃣",
		Name:        "5-4-3-2-1 grounding",
		Description: "5 things you see, 4 you hear, 3 you touch, 2 you smell, 1 you taste",
	},
	{
		ID:          "listen_to_music",
		Icon:        "🎧",
		Name:        "Listen to music",
		Description: "Put on calming music or white noise",
	},
	{
		ID:          "pressure",
		Icon:        "🤗",
		Name:        "Pressure",
		Description: "Hug yourself tight, use a weighted blanket, or squeeze a stress ball",
	},
	{
		ID:          "walk_away",
		Icon:        "🚶",
		Name:        "Walk away",
		Description: "Leave the situation. Go somewhere quiet for a few minutes",
	},
	{
		ID:          "cold_water",
		Icon:        "💧",
		Name:        "Cold water",
		Description: "Splash cold water on your face or wrists",
	},
	{
		ID:          "fidget",
		Icon:        "🧶",
		Name:        "Fidget",
		Description: "Use a fidget toy, rubber band, or squeeze something",
	},
}

// All returns every calming strategy in display order.
// The returned slice is a copy; callers may reorder it freely.
func All() []model.Strategy {
	out := make([]model.Strategy, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the strategy with the given ID.
func Find(id string) (model.Strategy, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return model.Strategy{}, false
}

// DisplayName resolves a favorite_strategy setting for display: a
// known ID yields the strategy name, anything else (hand-edited free
// text) is shown as-is.
func DisplayName(idOrText string) string {
	if s, ok := Find(idOrText); ok {
		return s.Name
	}
	return idOrText
}
