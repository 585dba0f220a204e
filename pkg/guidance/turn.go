package guidance

import (
	"math"
)

// enum of turn_type
type TurnType uint8

const (
	CONTINUE_ON_STREET TurnType = iota
	TURN_SLIGHT_LEFT
	TURN_SLIGHT_RIGHT
	TURN_LEFT
	TURN_RIGHT
	TURN_SHARP_LEFT
	TURN_SHARP_RIGHT
	U_TURN
)

/*
turn classification bands over the signed bearing delta (compass degrees,
normalized into (-180, 180], positive = clockwise = right):

	|delta| <  20   continue straight
	|delta| <  45   slight turn
	|delta| < 135   turn
	|delta| < 170   sharp turn
	otherwise       u-turn

the ±20° boundary belongs to the turning side, so the straight band is the
open interval (-20, 20).

note: the predecessor of this engine computed bearings with atan2(dLat, dLon),
a counter-clockwise math angle, which flips the sign of every delta. with true
compass bearings a positive (clockwise) delta is a right turn.
*/
func getTurnDirection(deltaDegree float64) TurnType {
	absDelta := math.Abs(deltaDegree)
	right := deltaDegree > 0

	switch {
	case absDelta < 20:
		return CONTINUE_ON_STREET
	case absDelta < 45:
		if right {
			return TURN_SLIGHT_RIGHT
		}
		return TURN_SLIGHT_LEFT
	case absDelta < 135:
		if right {
			return TURN_RIGHT
		}
		return TURN_LEFT
	case absDelta < 170:
		if right {
			return TURN_SHARP_RIGHT
		}
		return TURN_SHARP_LEFT
	default:
		return U_TURN
	}
}

func (t TurnType) IsStraight() bool {
	return t == CONTINUE_ON_STREET
}

func (t TurnType) Phrase() string {
	switch t {
	case CONTINUE_ON_STREET:
		return "continue straight"
	case TURN_SLIGHT_LEFT:
		return "turn slightly left"
	case TURN_SLIGHT_RIGHT:
		return "turn slightly right"
	case TURN_LEFT:
		return "turn left"
	case TURN_RIGHT:
		return "turn right"
	case TURN_SHARP_LEFT:
		return "turn sharply left"
	case TURN_SHARP_RIGHT:
		return "turn sharply right"
	case U_TURN:
		return "make a u-turn"
	default:
		return "continue straight"
	}
}
