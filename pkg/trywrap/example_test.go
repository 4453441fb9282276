package trywrap_test

import (
	"fmt"
	"strconv"

	"github.com/ib-77/trywrap/pkg/trywrap"
)

func ExampleMap() {
	parsed := trywrap.Map(trywrap.OfValue("21"), strconv.Atoi)
	doubled := parsed.Map(func(i int) (int, error) { return i * 2, nil })
	fmt.Println(doubled)

	bad := trywrap.Map(trywrap.OfValue("x"), strconv.Atoi).
		Map(func(i int) (int, error) { return i * 2, nil })
	fmt.Println(bad.IsLeft(), bad.UnwrapOr(-1))
	// Output:
	// Right(42)
	// true -1
}

func ExampleWrap_Filter() {
	short := trywrap.Of(func() (string, error) { return "abc", nil }).
		Filter(func(s string) (bool, error) { return len(s) > 5, nil })
	fmt.Println(short, short.UnwrapOr("default"))
	// Output: Empty default
}
