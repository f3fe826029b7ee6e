package result_test

import (
	"fmt"
	"strconv"

	"github.com/MrEthical07/goCommon/result"
)

func parsePort(s string) result.Result[int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return result.Fail[int](result.ErrOf(result.KindSyntax, "port is not a number"))
	}
	if n <= 0 || n > 65535 {
		return result.Fail[int](result.ErrOf(result.KindValue, "port out of range"))
	}
	return result.Ok(n)
}

func ExampleResult() {
	for _, in := range []string{"8080", "http", "70000"} {
		r := parsePort(in)
		if r.IsOk() {
			fmt.Println("port", r.Value())
			continue
		}
		fmt.Println(r.Err().Describe())
	}
	// Output:
	// port 8080
	// SyntaxError: port is not a number
	// ValueError: port out of range
}

func ExampleAndThen() {
	r := result.AndThen(parsePort("443"), func(p int) result.Result[string] {
		return result.Ok("https://localhost:" + strconv.Itoa(p))
	})
	fmt.Println(r.ValueOr("none"))
	// Output: https://localhost:443
}

func ExampleError_Describe() {
	e := result.ErrOf(result.KindZeroDivision, "division by zero")
	fmt.Println(e.Describe())
	// Output: ZeroDivisionError: division by zero
}
