package model

// Page identifies which page of the app the user is on.
type Page string

const (
	PageHome         Page = "home"
	PageCouplet      Page = "couplet"
	PageFortune      Page = "fortune"
	PageFirecrackers Page = "firecrackers"
)

// Style is the tone requested for a couplet.
type Style string

const (
	StyleTraditional Style = "traditional"
	StyleModern      Style = "modern"
	StyleHumorous    Style = "humorous"
)

// Styles lists the supported couplet styles in display order.
var Styles = []Style{StyleTraditional, StyleModern, StyleHumorous}

// CoupletRequest is the body of POST /api/couplet.
type CoupletRequest struct {
	Theme string `json:"theme"`
	Style Style  `json:"style,omitempty"`
}

// CoupletResult is a generated Spring Festival couplet.
type CoupletResult struct {
	Upper       string `json:"upper"`      // 上联
	Lower       string `json:"lower"`      // 下联
	Horizontal  string `json:"horizontal"` // 横批
	Explanation string `json:"explanation"`
}

// FortuneType is the life area a fortune card speaks to.
type FortuneType string

const (
	FortuneCareer FortuneType = "career"
	FortuneLove   FortuneType = "love"
	FortuneHealth FortuneType = "health"
	FortuneWealth FortuneType = "wealth"
)

// Valid reports whether t is one of the four known fortune types.
func (t FortuneType) Valid() bool {
	switch t {
	case FortuneCareer, FortuneLove, FortuneHealth, FortuneWealth:
		return true
	}
	return false
}

// Emoji returns the icon shown in the interpretation view.
func (t FortuneType) Emoji() string {
	switch t {
	case FortuneLove:
		return "❤️"
	case FortuneWealth:
		return "💰"
	case FortuneCareer:
		return "💼"
	default:
		return "🍎"
	}
}

// FortuneCard is a drawn New Year fortune. ID is produced by the model and
// is not guaranteed to be unique.
type FortuneCard struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	Blessing     string      `json:"blessing"`
	Type         FortuneType `json:"type"`
	UpperTrigram Trigram     `json:"upper_trigram,omitempty"`
	LowerTrigram Trigram     `json:"lower_trigram,omitempty"`
}

// Settings holds the user's decorative preferences.
type Settings struct {
	SoundEnabled     bool `json:"soundEnabled"`
	AnimationEnabled bool `json:"animationEnabled"`
}

// DefaultSettings returns sound and animation both enabled.
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true, AnimationEnabled: true}
}
