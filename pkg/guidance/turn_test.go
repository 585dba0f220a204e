package guidance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTurnDirection(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  TurnType
	}{
		{"dead straight", 0, CONTINUE_ON_STREET},
		{"drift right", 19.9, CONTINUE_ON_STREET},
		{"drift left", -19.9, CONTINUE_ON_STREET},
		{"boundary right", 20, TURN_SLIGHT_RIGHT},
		{"boundary left", -20, TURN_SLIGHT_LEFT},
		{"slight right", 30, TURN_SLIGHT_RIGHT},
		{"slight left", -30, TURN_SLIGHT_LEFT},
		{"right", 90, TURN_RIGHT},
		{"left", -90, TURN_LEFT},
		{"sharp right", 150, TURN_SHARP_RIGHT},
		{"sharp left", -150, TURN_SHARP_LEFT},
		{"u-turn positive", 175, U_TURN},
		{"u-turn negative", -175, U_TURN},
		{"full reversal", 180, U_TURN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getTurnDirection(tt.delta))
		})
	}
}

func TestIsStraight(t *testing.T) {
	assert.True(t, CONTINUE_ON_STREET.IsStraight())
	assert.False(t, TURN_SLIGHT_LEFT.IsStraight())
	assert.False(t, U_TURN.IsStraight())
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, "turn left", TURN_LEFT.Phrase())
	assert.Equal(t, "make a u-turn", U_TURN.Phrase())
}
