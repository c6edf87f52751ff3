package bind

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
	"unsafe"

	"github.com/restkit/adaptly/epoch"
	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

// Setter assigns a record value to a struct field.
type Setter func(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.TypeOf(&time.Time{})
)

// LookupSetter selects a setter for the source value type and destination
// field type. Sources are the kinds JSON decoding and field converters
// produce: string, bool, float64, ints, time.Time, lists and objects;
// anything without a dedicated pairing falls back to a JSON round trip.
func LookupSetter(src reflect.Type, dest reflect.Type) Setter {
	switch dest.Kind() {
	case reflect.Interface:
		return anyToInterface
	case reflect.String:
		switch src.Kind() {
		case reflect.String:
			return stringToString
		case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
			return intToString
		case reflect.Float64:
			return float64ToString
		case reflect.Bool:
			return boolToString
		}
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		switch src.Kind() {
		case reflect.String:
			return stringToInt
		case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
			return intToInt
		case reflect.Float64:
			return float64ToInt
		}
	case reflect.Bool:
		switch src.Kind() {
		case reflect.Bool:
			return boolToBool
		case reflect.String:
			return stringToBool
		}
	case reflect.Float64, reflect.Float32:
		switch src.Kind() {
		case reflect.Float64:
			return float64ToFloat
		case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
			return intToFloat
		case reflect.String:
			return stringToFloat
		}
	case reflect.Struct:
		if dest == timeType {
			switch {
			case src == timeType:
				return timeToTime
			case src.Kind() == reflect.String:
				return stringToTime
			case src.Kind() == reflect.Float64:
				return float64ToTime
			case src.Kind() == reflect.Int, src.Kind() == reflect.Int64:
				return intToTime
			}
		}
	case reflect.Ptr:
		if dest == timePtrType {
			switch {
			case src == timeType:
				return timeToTimePtr
			case src.Kind() == reflect.String:
				return stringToTimePtr
			}
		}
	}
	return anyToAny
}

func anyToInterface(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetValue(holder, src)
	return nil
}

func stringToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetString(holder, src.(string))
	return nil
}

func intToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetString(holder, strconv.Itoa(*(*int)(ptr)))
	return nil
}

func float64ToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetString(holder, strconv.FormatFloat(src.(float64), 'f', -1, 64))
	return nil
}

func boolToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetString(holder, strconv.FormatBool(src.(bool)))
	return nil
}

func stringToInt(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value, err := strconv.Atoi(src.(string))
	if err != nil {
		return err
	}
	field.SetInt(holder, value)
	return nil
}

func intToInt(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetInt(holder, *(*int)(ptr))
	return nil
}

func float64ToInt(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetInt(holder, int(src.(float64)))
	return nil
}

func boolToBool(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetBool(holder, src.(bool))
	return nil
}

func stringToBool(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value, err := strconv.ParseBool(src.(string))
	if err != nil {
		return err
	}
	field.SetBool(holder, value)
	return nil
}

func float64ToFloat(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	return setFloat(src.(float64), field, holder)
}

func intToFloat(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	return setFloat(float64(*(*int)(ptr)), field, holder)
}

func stringToFloat(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value, err := strconv.ParseFloat(src.(string), 64)
	if err != nil {
		return err
	}
	return setFloat(value, field, holder)
}

func setFloat(value float64, field *xunsafe.Field, holder unsafe.Pointer) error {
	if field.Kind() == reflect.Float32 {
		field.SetFloat32(holder, float32(value))
		return nil
	}
	field.SetFloat64(holder, value)
	return nil
}

func timeToTime(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetValue(holder, src.(time.Time))
	return nil
}

func timeToTimePtr(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := src.(time.Time)
	field.SetValue(holder, &value)
	return nil
}

func stringToTime(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value, err := parseTime(field, src.(string))
	if err != nil {
		return err
	}
	field.SetValue(holder, value)
	return nil
}

func stringToTimePtr(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value, err := parseTime(field, src.(string))
	if err != nil {
		return err
	}
	field.SetValue(holder, &value)
	return nil
}

// float64ToTime treats wire numbers as epoch milliseconds, the convention
// the API uses for numeric timestamps.
func float64ToTime(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetValue(holder, epoch.FromMillis(src.(float64)))
	return nil
}

func intToTime(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetValue(holder, epoch.FromMillis(float64(*(*int)(ptr))))
	return nil
}

func parseTime(field *xunsafe.Field, value string) (time.Time, error) {
	tag := fieldTag(field)
	if tag.TimeLayout != "" {
		return tag.ParseTime(value)
	}
	if t, err := epoch.FromString(value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", value, err)
	}
	return t, nil
}

func fieldTag(field *xunsafe.Field) *format.Tag {
	tag, _ := format.Parse(field.Tag)
	if tag == nil {
		tag = &format.Tag{}
	}
	if tag.TimeLayout == "" {
		tag.TimeLayout = field.Tag.Get("timeLayout")
	}
	return tag
}

// anyToAny bridges remaining shapes, e.g. lists and nested objects, through
// a JSON round trip into the destination type.
func anyToAny(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	reflectValuePtr := reflect.New(field.Type)
	if err = json.Unmarshal(data, reflectValuePtr.Interface()); err != nil {
		return err
	}
	field.SetValue(holder, reflectValuePtr.Elem().Interface())
	return nil
}
