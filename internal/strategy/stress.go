package strategy

// Stress scale bounds. Levels are whole numbers from MinStress to
// MaxStress; DefaultStress is where the picker starts.
const (
	MinStress     = 1
	MaxStress     = 10
	DefaultStress = 3
)

var stressEmojis = map[int]string{
	1:  "😊",
	2:  "🙂",
	3:  "😐",
	4:  "😕",
	5:  "😟",
	6:  "😰",
	7:  "😫",
	8:  "🤯",
	9:  "😭",
	10: "💥",
}

// StressEmoji returns the face shown for a stress level.
// Out-of-range levels get the neutral face.
func StressEmoji(level int) string {
	if e, ok := stressEmojis[level]; ok {
		return e
	}
	return "😐"
}

// StressMark labels the scale endpoints and midpoint.
func StressMark(level int) string {
	switch level {
	case MinStress:
		return "Calm"
	case 5:
		return "Medium"
	case MaxStress:
		return "Overload"
	default:
		return ""
	}
}

// Suggestion returns the guidance text for a stress level.
func Suggestion(level int) string {
	switch {
	case level <= 3:
		return "You seem calm. Great! Keep doing what you're doing."
	case level <= 5:
		return "Getting a bit tense. Try a short breathing exercise."
	case level <= 7:
		return "High stress. Take a break now. Try the breathing exercise or one of the strategies."
	default:
		return "Very high stress. Press the emergency button or go to breathing immediately. You are safe. 💙"
	}
}
