package diagnosis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Skufu/healthassistant/internal/apperr"
)

// ValueFunc looks up the raw submitted text for a field key.
type ValueFunc func(key string) string

// MapValues adapts a plain map to a ValueFunc.
func MapValues(m map[string]string) ValueFunc {
	return func(key string) string { return m[key] }
}

// CollectDiabetes reads numeric widget values. Unparseable and negative values are INVALID_INPUT.
func CollectDiabetes(get ValueFunc) (DiabetesInput, error) {
	var in DiabetesInput
	slots := in.slots()
	if err := collectNumeric(diabetesSchema, slots[:], get); err != nil {
		return DiabetesInput{}, err
	}
	return in, in.Validate()
}

// CollectHeart reads numeric widget values. Unparseable and negative values are INVALID_INPUT.
func CollectHeart(get ValueFunc) (HeartInput, error) {
	var in HeartInput
	slots := in.slots()
	if err := collectNumeric(heartSchema, slots[:], get); err != nil {
		return HeartInput{}, err
	}
	return in, in.Validate()
}

// CollectParkinsons parses free-text fields. Empty or non-numeric text is PARSE_ERROR.
func CollectParkinsons(get ValueFunc) (ParkinsonsInput, error) {
	var in ParkinsonsInput
	var bad []string
	for i, slot := range in.slots() {
		key := parkinsonsSchema.Fields[i].Key
		v, ok := parseText(get(key))
		if !ok {
			bad = append(bad, key)
			continue
		}
		*slot = v
	}
	if len(bad) > 0 {
		return ParkinsonsInput{}, apperr.ParseError(bad...)
	}
	return in, nil
}

// Collect dispatches to the collector for d.
func Collect(d Disease, get ValueFunc) (Input, error) {
	if !d.Valid() {
		return nil, apperr.InternalError(fmt.Sprintf("unknown disease %d", d))
	}

	var (
		in  Input
		err error
	)
	switch d {
	case Diabetes:
		in, err = CollectDiabetes(get)
	case Heart:
		in, err = CollectHeart(get)
	case Parkinsons:
		in, err = CollectParkinsons(get)
	}
	if err != nil {
		return nil, err
	}
	return in, nil
}

func collectNumeric(schema Schema, slots []*float64, get ValueFunc) error {
	var bad []string
	for i, slot := range slots {
		key := schema.Fields[i].Key
		v, err := strconv.ParseFloat(strings.TrimSpace(get(key)), 64)
		if err != nil || math.IsInf(v, 0) {
			bad = append(bad, key)
			continue
		}
		*slot = v
	}
	if len(bad) > 0 {
		return apperr.InvalidInput(bad...)
	}
	return nil
}

func parseText(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
