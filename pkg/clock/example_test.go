package clock_test

import (
	"fmt"

	"github.com/matzehuels/binclock/pkg/clock"
)

func ExampleConvert() {
	states, err := clock.Convert(clock.BerlinPattern(), clock.MustTimeOfDay(13, 17, 1, 0))
	if err != nil {
		panic(err)
	}
	for _, s := range states {
		fmt.Printf("%d of %s\n", s.Lit, s.Row)
	}
	// Output:
	// 2 of 4 x 5 HOURS
	// 3 of 4 x 1 HOURS
	// 3 of 11 x 5 MINUTES
	// 2 of 4 x 1 MINUTES
	// 1 of 59 x 1 SECONDS
}

func ExampleNewPattern() {
	// A decimal-ish clock: tens of hours, hours, tens of minutes, minutes.
	p, err := clock.NewPattern([]clock.Row{
		clock.MustRow(10, clock.Hour, 2),
		clock.MustRow(1, clock.Hour, 9),
		clock.MustRow(10, clock.Minute, 5),
		clock.MustRow(1, clock.Minute, 9),
	})
	if err != nil {
		panic(err)
	}
	states, _ := clock.Convert(p, clock.MustTimeOfDay(21, 47, 0, 0))
	fmt.Println(clock.LitCounts(states))

	// Dropping the hours row leaves most of the day unrepresentable.
	_, err = clock.NewPattern([]clock.Row{
		clock.MustRow(10, clock.Hour, 2),
		clock.MustRow(10, clock.Minute, 5),
		clock.MustRow(1, clock.Minute, 9),
	})
	fmt.Println(err != nil)
	// Output:
	// [2 1 4 7]
	// true
}

func ExampleOf() {
	blink, err := clock.Of(clock.NewBerlinClock(), clock.MustTimeOfDay(0, 0, 7, 0),
		func(states []clock.RowState) (bool, error) {
			return clock.BlinkOn(states), nil
		})
	fmt.Println(blink, err)
	// Output:
	// true <nil>
}
