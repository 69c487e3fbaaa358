package output

import "strconv"

// Cell formatting for the basic kinds. Floats use the shortest form that
// round-trips, so 0.2 prints as 0.2 rather than 0.20000000000000001.

func intToString(v int64) string { return strconv.FormatInt(v, 10) }

func uintToString(v uint64) string { return strconv.FormatUint(v, 10) }

func boolToString(v bool) string { return strconv.FormatBool(v) }

func floatToString(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
