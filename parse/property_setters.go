package parse

import (
	"log/slog"
	"strconv"
	"time"

	"chronoical/icaldur"
	"chronoical/model"
)

// setSingle assigns a single-valued property field. When the field was
// already set by an earlier line, the later value wins and a warning is
// logged; duplicate single-valued properties are a data-quality problem in
// the feed, not a reason to stop parsing.
func setSingle[T comparable](field *T, value T, propertyName string, componentName string) {
	var zero T
	if *field != zero {
		slog.Warn("duplicate single-valued property, keeping the later value",
			"property", propertyName, "component", componentName)
	}
	*field = value
}

// setSingleInt parses and assigns a single-valued integer property.
func setSingleInt(field *int, value, propertyName, componentName string) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return &model.InvalidValueError{Property: propertyName, Value: value, Err: err}
	}
	setSingle(field, parsed, propertyName, componentName)
	return nil
}

// setSingleUTCTime parses and assigns a DATE-TIME property that the RFC
// requires to be in UTC (DTSTAMP, CREATED, LAST-MODIFIED, COMPLETED).
func setSingleUTCTime(field *time.Time, value, propertyName, componentName string) error {
	parsed, err := icaldur.ParseIcalTime(value)
	if err != nil {
		return &model.InvalidValueError{Property: propertyName, Value: value, Err: err}
	}
	setSingle(field, parsed, propertyName, componentName)
	return nil
}

// setSingleDuration parses and assigns a single-valued DURATION property.
func setSingleDuration(field *time.Duration, value, propertyName, componentName string) error {
	parsed, err := icaldur.ParseICalDuration(value)
	if err != nil {
		return &model.InvalidValueError{Property: propertyName, Value: value, Err: err}
	}
	setSingle(field, parsed, propertyName, componentName)
	return nil
}
