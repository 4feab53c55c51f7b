// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rrule implements the recurrence rule model defined in RFC 5545
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
package rrule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	extrrule "github.com/teambition/rrule-go"

	"chronoical/icaldur"
)

// Errors returned by ParseRRule; the offending fragment is wrapped
// alongside where it helps.
var (
	ErrMalformedRule    = errors.New("malformed RRULE: parts must be KEY=VALUE")
	ErrMissingFrequency = errors.New("RRULE must declare FREQ")
	ErrUnknownFrequency = errors.New("unknown FREQ value")
	ErrCountAndUntil    = errors.New("RRULE cannot carry both COUNT and UNTIL")
	ErrBadInterval      = errors.New("INTERVAL must be a positive integer")
	ErrBadByDay         = errors.New("malformed BYDAY entry")
)

type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "MO"
	WeekdayTuesday   Weekday = "TU"
	WeekdayWednesday Weekday = "WE"
	WeekdayThursday  Weekday = "TH"
	WeekdayFriday    Weekday = "FR"
	WeekdaySaturday  Weekday = "SA"
	WeekdaySunday    Weekday = "SU"
)

// ByDay is a single BYDAY entry: a weekday, optionally restricted to its
// Nth (or Nth-from-last, if negative) occurrence within the enclosing
// FREQ period, e.g. "-1SU" (last Sunday) or "2MO" (second Monday).
type ByDay struct {
	Weekday Weekday
	// Ordinal is the signed prefix ("-1SU" -> -1). Zero means unrestricted
	// (every matching weekday within the period).
	Ordinal int
}

// RRule is the fully parsed RFC 5545 recurrence rule, plus the
// non-standard BYEASTER extension seen in some calendar exports.
type RRule struct {
	// Frequency is required.
	Frequency Frequency
	// Interval defaults to 1 if not present.
	Interval int
	// Count and Until are mutually exclusive.
	Count *int
	Until *time.Time
	// UntilIsDate is true when UNTIL was given as a DATE value rather
	// than a DATE-TIME.
	UntilIsDate bool

	BySecond   []int
	ByMinute   []int
	ByHour     []int
	ByDay      []ByDay
	ByMonthDay []int
	ByYearDay  []int
	ByWeekNo   []int
	ByMonth    []int
	BySetPos   []int

	// WKST is the week-start day, default Monday.
	WKST Weekday

	// ByEaster is the non-standard BYEASTER extension: signed day offsets
	// from the Gregorian Easter Sunday of the enclosing year (0 is Easter
	// itself, -2 is Good Friday, 49 is Whit Sunday). Not part of RFC 5545
	// and not supported by github.com/teambition/rrule-go; see
	// EasterOccurrences in this package for how it is expanded.
	ByEaster []int
}

// ParseRRule takes an iCal recurrence rule string and parses it into an
// RRule struct.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.3
func ParseRRule(rruleString string) (*RRule, error) {
	rrule := &RRule{
		Interval: 1,
		WKST:     WeekdayMonday,
	}
	for _, part := range strings.Split(rruleString, ";") {
		tag, value, found := strings.Cut(part, "=")
		if !found {
			return nil, ErrMalformedRule
		}
		switch tag {
		case "FREQ":
			rrule.Frequency = Frequency(value)
			if !isValidFrequency(rrule.Frequency) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownFrequency, value)
			}
		case "INTERVAL":
			interval, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrBadInterval, value)
			}
			rrule.Interval = interval
		case "COUNT":
			count, err := strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			rrule.Count = &count
		case "UNTIL":
			until, isDate, err := parseUntil(value)
			if err != nil {
				return nil, err
			}
			rrule.Until = &until
			rrule.UntilIsDate = isDate
		case "WKST":
			wkst := Weekday(value)
			if !isValidWeekday(wkst) {
				return nil, fmt.Errorf("%w: %s", ErrBadByDay, value)
			}
			rrule.WKST = wkst
		case "BYDAY":
			days, err := parseByDayList(value)
			if err != nil {
				return nil, err
			}
			rrule.ByDay = days
		case "BYMONTH":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.ByMonth = ints
		case "BYMONTHDAY":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.ByMonthDay = ints
		case "BYYEARDAY":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.ByYearDay = ints
		case "BYWEEKNO":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.ByWeekNo = ints
		case "BYSETPOS":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.BySetPos = ints
		case "BYHOUR":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.ByHour = ints
		case "BYMINUTE":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.ByMinute = ints
		case "BYSECOND":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.BySecond = ints
		case "BYEASTER":
			ints, err := parseIntList(value)
			if err != nil {
				return nil, err
			}
			rrule.ByEaster = ints
		}
	}
	if err := validateRRule(rrule); err != nil {
		return nil, err
	}
	return rrule, nil
}

func parseUntil(value string) (time.Time, bool, error) {
	if len(value) == 8 {
		t, err := icaldur.ParseDate(value)
		return t, true, err
	}
	t, err := icaldur.ParseIcalTime(value)
	return t, false, err
}

func parseIntList(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseByDayList(value string) ([]ByDay, error) {
	weekdays := strings.Split(value, ",")
	days := make([]ByDay, 0, len(weekdays))
	for _, weekday := range weekdays {
		ordinal, wd, err := ParseByDay(weekday)
		if err != nil {
			return nil, err
		}
		days = append(days, ByDay{Weekday: wd, Ordinal: ordinal})
	}
	return days, nil
}

func validateRRule(rrule *RRule) error {
	if rrule.Frequency == "" {
		return ErrMissingFrequency
	}
	if rrule.Count != nil && rrule.Until != nil {
		return ErrCountAndUntil
	}
	if rrule.Interval <= 0 {
		return ErrBadInterval
	}
	return nil
}

// ParseByDay parses a BYDAY value string and returns the ordinal and
// weekday. The string can be in the format "-1SU" (ordinal + weekday) or
// just "MO" (weekday only, ordinal 0 meaning unrestricted).
func ParseByDay(byDayString string) (int, Weekday, error) {
	if byDayString == "" {
		return 0, "", ErrBadByDay
	}

	if byDayString[0] >= '0' && byDayString[0] <= '9' || byDayString[0] == '-' || byDayString[0] == '+' {
		digitEnd := 0
		for i, char := range byDayString {
			if char < '0' || char > '9' {
				if (char == '-' || char == '+') && i == 0 {
					continue
				}
				digitEnd = i
				break
			}
			digitEnd = i + 1
		}

		intervalStr := byDayString[:digitEnd]
		weekday := Weekday(byDayString[digitEnd:])

		if !isValidWeekday(weekday) {
			return 0, "", ErrBadByDay
		}

		ordinal, err := strconv.Atoi(intervalStr)
		if err != nil {
			return 0, "", ErrBadByDay
		}

		return ordinal, weekday, nil
	}

	if !isValidWeekday(Weekday(byDayString)) {
		return 0, "", ErrBadByDay
	}

	return 0, Weekday(byDayString), nil
}

func isValidWeekday(weekday Weekday) bool {
	switch weekday {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	default:
		return false
	}
}

func isValidFrequency(f Frequency) bool {
	switch f {
	case FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

var weekdayToExt = map[Weekday]extrrule.Weekday{
	WeekdayMonday:    extrrule.MO,
	WeekdayTuesday:   extrrule.TU,
	WeekdayWednesday: extrrule.WE,
	WeekdayThursday:  extrrule.TH,
	WeekdayFriday:    extrrule.FR,
	WeekdaySaturday:  extrrule.SA,
	WeekdaySunday:    extrrule.SU,
}

var freqToExt = map[Frequency]extrrule.Frequency{
	FrequencySecondly: extrrule.SECONDLY,
	FrequencyMinutely: extrrule.MINUTELY,
	FrequencyHourly:   extrrule.HOURLY,
	FrequencyDaily:    extrrule.DAILY,
	FrequencyWeekly:   extrrule.WEEKLY,
	FrequencyMonthly:  extrrule.MONTHLY,
	FrequencyYearly:   extrrule.YEARLY,
}

// ToROption converts this rule into the ROption accepted by
// github.com/teambition/rrule-go, the engine that drives iteration in
// Occurrences and All. BYEASTER has no representation in ROption and is
// dropped here; Occurrences and All expand a non-empty ByEaster through
// EasterOccurrences instead.
func (r *RRule) ToROption(dtstart time.Time) (*extrrule.ROption, error) {
	opt := &extrrule.ROption{
		Freq:       freqToExt[r.Frequency],
		Dtstart:    dtstart,
		Interval:   r.Interval,
		Wkst:       weekdayToExt[r.WKST],
		Bysecond:   r.BySecond,
		Byminute:   r.ByMinute,
		Byhour:     r.ByHour,
		Bymonthday: r.ByMonthDay,
		Byyearday:  r.ByYearDay,
		Byweekno:   r.ByWeekNo,
		Bymonth:    r.ByMonth,
		Bysetpos:   r.BySetPos,
	}
	if r.Count != nil {
		opt.Count = *r.Count
	}
	if r.Until != nil {
		opt.Until = *r.Until
	}
	if len(r.ByDay) > 0 {
		opt.Byweekday = make([]extrrule.Weekday, 0, len(r.ByDay))
		for _, bd := range r.ByDay {
			wd := weekdayToExt[bd.Weekday]
			if bd.Ordinal != 0 {
				wd = wd.Nth(bd.Ordinal)
			}
			opt.Byweekday = append(opt.Byweekday, wd)
		}
	}
	return opt, nil
}
