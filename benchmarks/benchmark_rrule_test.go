// Package benchmarks holds comparative benchmarks between this module's
// rule parsing and the rrule-go engine it delegates iteration to.
package benchmarks

import (
	"testing"

	rrule_go "github.com/teambition/rrule-go"

	"chronoical/rrule"
)

var benchmarkRules = []struct {
	name string
	rule string
}{
	{"simple", "FREQ=DAILY;INTERVAL=1;COUNT=10"},
	{"until", "FREQ=DAILY;INTERVAL=1;UNTIL=20250928T183000Z"},
	{"byday", "FREQ=MONTHLY;INTERVAL=2;BYDAY=-1FR,2MO;BYSETPOS=1"},
}

func BenchmarkParseRRule(b *testing.B) {
	for _, bench := range benchmarkRules {
		b.Run(bench.name+"/ChronoIcal", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := rrule.ParseRRule(bench.rule); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(bench.name+"/RRuleGo", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := rrule_go.StrToRRule(bench.rule); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
