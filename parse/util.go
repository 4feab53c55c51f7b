package parse

import (
	"strings"
)

// parseIcalLine parses a single unfolded content line and returns the
// property name, its parameters, and its raw value.
// The propertyName is the string before the first colon or semicolon;
// params are semicolon-separated NAME=VALUE pairs between the property
// name and the colon; value is everything after the first colon that is
// not itself inside a quoted parameter value.
func parseIcalLine(line string) (propertyName string, params map[string]string, value string, err error) {
	colonIndex := findUnquotedColonIndex(line)
	if colonIndex == -1 {
		return "", nil, "", &invalidLineError{line: line}
	}

	beforeColon := line[:colonIndex]
	value = line[colonIndex+1:]

	propertyName = beforeColon
	if semicolonIndex := strings.Index(beforeColon, ";"); semicolonIndex != -1 {
		propertyName = beforeColon[:semicolonIndex]
		paramString := beforeColon[semicolonIndex+1:]
		if paramString != "" {
			params = splitParameters(paramString)
		}
	}

	return propertyName, params, value, nil
}

// splitParameters splits a parameter string by semicolons, respecting
// quoted values, and parses each NAME=VALUE pair into a map. A parameter
// with no '=' is kept with an empty value rather than dropped, since a
// malformed parameter shouldn't take the whole property down with it.
func splitParameters(paramString string) map[string]string {
	params := map[string]string{}
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() == 0 {
			return
		}
		name, value, _ := strings.Cut(current.String(), "=")
		params[strings.ToUpper(name)] = strings.Trim(value, `"`)
		current.Reset()
	}

	for _, c := range paramString {
		switch {
		case c == '"':
			inQuotes = !inQuotes
			current.WriteRune(c)
		case c == ';' && !inQuotes:
			flush()
		default:
			current.WriteRune(c)
		}
	}
	flush()

	return params
}

// findUnquotedColonIndex finds the first colon that is not encapsulated in quotations.
func findUnquotedColonIndex(line string) int {
	inQuotes := false
	for i, c := range line {
		if c == '"' {
			inQuotes = !inQuotes
		} else if c == ':' && !inQuotes {
			return i
		}
	}
	return -1
}

type invalidLineError struct {
	line string
}

func (e *invalidLineError) Error() string {
	return "invalid property line: " + e.line
}
