package element

// Girl is a character component. The zero value carries the stock look:
// brown hair, light skin, average body, cute appearance.
type Girl struct {
	HairColor    HairColor
	SkinColor    SkinColor
	BodyType     BodyType
	Appearance   Appearance
	EveryMorning []GirlAction
}

func (Girl) isObject() {}

// IntoObject returns the girl itself.
func (g Girl) IntoObject() Object { return g }

// HairColor is a hair color choice. The zero value is Brown.
type HairColor int

const (
	HairColorBrown HairColor = iota
	HairColorBlack
	HairColorBlonde
	HairColorRed
)

// String returns the color name.
func (c HairColor) String() string {
	switch c {
	case HairColorBrown:
		return "Brown"
	case HairColorBlack:
		return "Black"
	case HairColorBlonde:
		return "Blonde"
	case HairColorRed:
		return "Red"
	default:
		return "Unknown"
	}
}

// SkinColor is a skin tone choice. The zero value is Light.
type SkinColor int

const (
	SkinLight SkinColor = iota
	SkinYellow
	SkinDark
)

// String returns the tone name.
func (c SkinColor) String() string {
	switch c {
	case SkinLight:
		return "Light"
	case SkinYellow:
		return "Yellow"
	case SkinDark:
		return "Dark"
	default:
		return "Unknown"
	}
}

// BodyType is a body build choice. The zero value is Average.
type BodyType int

const (
	BodyAverage BodyType = iota
	BodySlim
	BodyCurvy
)

// String returns the build name.
func (b BodyType) String() string {
	switch b {
	case BodyAverage:
		return "Average"
	case BodySlim:
		return "Slim"
	case BodyCurvy:
		return "Curvy"
	default:
		return "Unknown"
	}
}

// Appearance is an overall look choice. The zero value is Cute.
type Appearance int

const (
	AppearanceCute Appearance = iota
	AppearanceBeautiful
	AppearancePlain
)

// String returns the look name.
func (a Appearance) String() string {
	switch a {
	case AppearanceCute:
		return "Cute"
	case AppearanceBeautiful:
		return "Beautiful"
	case AppearancePlain:
		return "Plain"
	default:
		return "Unknown"
	}
}

// GirlAction is a scripted routine step.
type GirlAction int

const (
	GirlActionSayHi GirlAction = iota
	GirlActionPrepareBreakfast
)

// String returns the action name.
func (a GirlAction) String() string {
	switch a {
	case GirlActionSayHi:
		return "SayHi"
	case GirlActionPrepareBreakfast:
		return "PrepareBreakfast"
	default:
		return "Unknown"
	}
}
