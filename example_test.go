package rubytime_test

import (
	"fmt"
	"time"

	"github.com/embulk/embulk-util-rubytime-sub000"
)

func ExampleParseString() {
	p, err := rubytime.ParseString("%Y-%m-%dT%H:%M:%S%Z", "2017-12-31T12:34:56PST")
	if err != nil {
		panic(err)
	}
	year, _ := p.Year()
	zone, _ := p.Zone()
	fmt.Println(year, zone)
	// Output: 2017 PST
}

func ExampleResolve() {
	p, err := rubytime.ParseString("%Y-%m-%dT%H:%M:%S%Z", "2017-12-31T12:34:56PST")
	if err != nil {
		panic(err)
	}
	r, err := rubytime.Resolve(p, rubytime.ResolveOptions{})
	if err != nil {
		panic(err)
	}
	instant, _ := r.Instant()
	offset, _ := r.Offset()
	fmt.Println(instant, offset)
	// Output: 1514752496 -28800
}

func ExampleResolve_leapSecond() {
	p, err := rubytime.ParseString("%Y-%m-%dT%H:%M:%S", "2001-02-03T23:59:60")
	if err != nil {
		panic(err)
	}
	r, err := rubytime.Resolve(p, rubytime.ResolveOptions{HasDefaultOffset: true})
	if err != nil {
		panic(err)
	}
	instant, _ := r.Instant()
	fmt.Println(time.Unix(instant, 0).UTC().Format("2006-01-02T15:04:05"))
	// Output: 2001-02-04T00:00:00
}

func ExampleResolve_qDominatesOverS() {
	p, err := rubytime.ParseString("%s %Q", "123456789 12849124")
	if err != nil {
		panic(err)
	}
	r, err := rubytime.Resolve(p, rubytime.ResolveOptions{})
	if err != nil {
		panic(err)
	}
	instant, _ := r.Instant()
	fmt.Println(instant)
	// Output: 12849
}

func ExampleFormatString() {
	src := rubytime.Fields{
		Year: 2019, Month: 6, Day: 8, DateSet: true,
		Hour: 12, Minute: 34, Second: 56, Nsec: 789000000, ClockSet: true,
		OffsetSeconds: 9 * 3600, OffsetSet: true,
	}
	out, err := rubytime.FormatString("%Y-%m-%dT%H:%M:%S.%N %z", src)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: 2019-06-08T12:34:56.789000000 +0900
}

func ExampleFormatString_shortestZoneOffset() {
	for _, offset := range []int{9 * 3600, 9*3600 + 1800, 9*3600 + 1800 + 30} {
		src := rubytime.Fields{OffsetSeconds: offset, OffsetSet: true}
		out, err := rubytime.FormatString("%:::z", src)
		if err != nil {
			panic(err)
		}
		fmt.Println(out)
	}
	// Output:
	// +09
	// +09:30
	// +09:30:30
}
