package element_test

import (
	"testing"

	"github.com/dshills/snowui/element"
)

func TestGirlZeroValueIsStockLook(t *testing.T) {
	var g element.Girl
	if g.HairColor != element.HairColorBrown {
		t.Errorf("zero HairColor = %v, want Brown", g.HairColor)
	}
	if g.SkinColor != element.SkinLight {
		t.Errorf("zero SkinColor = %v, want Light", g.SkinColor)
	}
	if g.BodyType != element.BodyAverage {
		t.Errorf("zero BodyType = %v, want Average", g.BodyType)
	}
	if g.Appearance != element.AppearanceCute {
		t.Errorf("zero Appearance = %v, want Cute", g.Appearance)
	}
	if len(g.EveryMorning) != 0 {
		t.Errorf("zero EveryMorning has %d actions, want 0", len(g.EveryMorning))
	}
}

func TestGirlEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{element.HairColorBrown.String(), "Brown"},
		{element.HairColorBlack.String(), "Black"},
		{element.HairColorBlonde.String(), "Blonde"},
		{element.HairColorRed.String(), "Red"},
		{element.SkinLight.String(), "Light"},
		{element.SkinYellow.String(), "Yellow"},
		{element.SkinDark.String(), "Dark"},
		{element.BodyAverage.String(), "Average"},
		{element.BodySlim.String(), "Slim"},
		{element.BodyCurvy.String(), "Curvy"},
		{element.AppearanceCute.String(), "Cute"},
		{element.AppearanceBeautiful.String(), "Beautiful"},
		{element.AppearancePlain.String(), "Plain"},
		{element.GirlActionSayHi.String(), "SayHi"},
		{element.GirlActionPrepareBreakfast.String(), "PrepareBreakfast"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
