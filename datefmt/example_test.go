package datefmt

import (
	"fmt"
	"time"
)

func ExampleFormatter_Format() {
	f := New(ISO8601, time.UTC)
	fmt.Println(f.Format(1680693679496))
	fmt.Println(f.Length())
	// Output:
	// 2023-04-05T11:21:19,496
	// 23
}

func ExampleNewForOptions() {
	f, ok := NewForOptions("ISO8601_UTC", "UTC")
	fmt.Println(ok, f.Format(1680693679496))

	_, ok = NewForOptions("EEE MMM dd")
	fmt.Println(ok)
	// Output:
	// true 2023-04-05T11:21:19.496Z
	// false
}
