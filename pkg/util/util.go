package util

import (
	"errors"
	"fmt"
	"math"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s", e.msg)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// ErrorCode unwraps the sentinel code from an error produced by WrapErrorf.
func ErrorCode(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return nil
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrRouteNotFound       = errors.New("no route found between the given points")
	ErrBadParamInput       = errors.New("given Param is not valid")
	ErrEmptyGraph          = errors.New("graph has no vertices")
	ErrDataLoad            = errors.New("failed to load source geometry")
	ErrInconsistentPath    = errors.New("path references an edge absent from the graph")
)

var MessageInternalServerError string = "internal server error"

func DegreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func RadiansToDegree(rad float64) float64 {
	return 180.0 * rad / math.Pi
}

func Abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// ValidateLonLat checks that the pair is inside the WGS84 coordinate domain.
func ValidateLonLat(lon, lat float64) error {
	if math.IsNaN(lon) || math.IsNaN(lat) ||
		lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return WrapErrorf(nil, ErrBadParamInput,
			"coordinate (%f, %f) outside valid longitude/latitude range", lon, lat)
	}
	return nil
}

func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr)) // should do on the copy )
	copy(copyArr, arr)
	for i, j := 0, len(copyArr)-1; i < j; i, j = i+1, j-1 {
		copyArr[i], copyArr[j] = copyArr[j], copyArr[i]
	}
	return copyArr
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
