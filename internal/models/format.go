package models

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatValue renders a summary value for prompt output. Dates without a
// clock component render as plain dates; NULL cells render empty.
func FormatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	case float64:
		return FormatFloat(t)
	case float32:
		return FormatFloat(float64(t))
	default:
		return fmt.Sprint(v)
	}
}

// FormatFloat keeps one decimal on integral floats ("65.0", not "65") so
// a mean is visibly a mean next to integer min/max values.
func FormatFloat(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
