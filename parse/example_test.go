package parse_test

import (
	"fmt"

	"chronoical/parse"
)

const exampleInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Event//Event Calendar//EN
BEGIN:VEVENT
UID:13235@example.com
DTSTART:20250928T183000Z
DTEND:20250928T203000Z
SUMMARY:Quarterly Review
LOCATION:Room 4
END:VEVENT
END:VCALENDAR
`

func ExampleParseString() {
	calendar, err := parse.ParseString(exampleInput)
	if err != nil {
		panic(err)
	}

	event := calendar.Events[0]
	fmt.Println(event.Summary)
	fmt.Println(event.Location)
	// Output:
	// Quarterly Review
	// Room 4
}
