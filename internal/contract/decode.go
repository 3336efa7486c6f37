package contract

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"wxledger/internal/models"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

var ErrInvalidArguments = errors.New("invalid arguments")

var arity = map[Method]int{
	MethodRecordPredictionResult: 3,
	MethodGetUserAccuracy:        1,
	MethodGetLocationAccuracy:    1,
	MethodAuthorizeOracle:        1,
	MethodRevokeOracle:           1,
	MethodAddWeatherData:         5,
	MethodGetWeatherData:         2,
	MethodIsAuthorizedOracle:     1,
}

// Decode turns positional arguments into the typed call for method.
// Values are coerced, so "25", 25 and 25.0 are all accepted as integers;
// 25.9 is rejected rather than truncated.
func Decode(method Method, args []any) (Call, error) {
	want, ok := arity[method]
	if !ok {
		return nil, models.ErrMethodNotFound
	}
	if len(args) != want {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidArguments, method, want, len(args))
	}
	for i, a := range args {
		if a == nil {
			return nil, fmt.Errorf("%w: argument %d of %s is null", ErrInvalidArguments, i, method)
		}
	}

	d := argDecoder{method: method, args: args}
	var call Call
	switch method {
	case MethodRecordPredictionResult:
		call = RecordPredictionResult{User: d.str(0), Location: d.str(1), IsCorrect: d.boolean(2)}
	case MethodGetUserAccuracy:
		call = GetUserAccuracy{User: d.str(0)}
	case MethodGetLocationAccuracy:
		call = GetLocationAccuracy{Location: d.str(0)}
	case MethodAuthorizeOracle:
		call = AuthorizeOracle{Oracle: models.Identity(d.str(0))}
	case MethodRevokeOracle:
		call = RevokeOracle{Oracle: models.Identity(d.str(0))}
	case MethodAddWeatherData:
		call = AddWeatherData{
			Location: d.str(0),
			Record: models.WeatherRecord{
				Temperature:   d.integer(1),
				Humidity:      d.integer(2),
				WindSpeed:     d.integer(3),
				Precipitation: d.integer(4),
			},
		}
	case MethodGetWeatherData:
		call = GetWeatherData{Location: d.str(0), Timestamp: d.unsigned(1)}
	case MethodIsAuthorizedOracle:
		call = IsAuthorizedOracle{Oracle: models.Identity(d.str(0))}
	}
	if d.err != nil {
		return nil, d.err
	}
	return call, nil
}

// argDecoder keeps the first coercion error so Decode can read every
// argument without checking after each one.
type argDecoder struct {
	method Method
	args   []any
	err    error
}

func (d *argDecoder) fail(i int, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: argument %d of %s: %w", ErrInvalidArguments, i, d.method, err)
	}
}

func (d *argDecoder) str(i int) string {
	v, err := cast.ToStringE(d.args[i])
	if err != nil {
		d.fail(i, err)
	}
	return v
}

func (d *argDecoder) boolean(i int) bool {
	v, err := cast.ToBoolE(d.args[i])
	if err != nil {
		d.fail(i, err)
	}
	return v
}

func (d *argDecoder) integer(i int) int64 {
	var (
		v   int64
		err error
	)
	switch a := d.args[i].(type) {
	case string:
		v, err = parseInteger(a)
	case json.Number:
		v, err = parseInteger(a.String())
	case float32, float64:
		v, err = wholeInt64(cast.ToFloat64(a))
	default:
		v, err = cast.ToInt64E(a)
	}
	if err != nil {
		d.fail(i, err)
	}
	return v
}

func (d *argDecoder) unsigned(i int) uint64 {
	var (
		v   uint64
		err error
	)
	switch a := d.args[i].(type) {
	case string:
		v, err = parseUnsigned(a)
	case json.Number:
		v, err = parseUnsigned(a.String())
	case float32, float64:
		v, err = wholeUint64(cast.ToFloat64(a))
	default:
		v, err = cast.ToUint64E(a)
	}
	if err != nil {
		d.fail(i, err)
	}
	return v
}

// parseInteger reads a base-10 integer. Leading zeros are decimal, and a
// number written with an exponent or a zero fraction is accepted when whole.
func parseInteger(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return wholeInt64(f)
}

func parseUnsigned(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an unsigned integer", s)
	}
	return wholeUint64(f)
}

func wholeInt64(f float64) (int64, error) {
	if math.Trunc(f) != f {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%v is out of range", f)
	}
	return int64(f), nil
}

func wholeUint64(f float64) (uint64, error) {
	if math.Trunc(f) != f {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	if f < 0 || f >= math.MaxUint64 {
		return 0, fmt.Errorf("%v is out of range", f)
	}
	return uint64(f), nil
}
