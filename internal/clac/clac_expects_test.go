package clac

// @generated from clac_test.go

//go:generate go run ../../scripts/gen_expects.go -pkg clac -type clacTestCase -infix Clac -- clac_test.go clac_expects_test.go

import "time"

func withClacTimeout(timeout time.Duration) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.withTimeout(timeout)
	}
}

func withClacStack(values ...int32) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.withStack(values...)
	}
}

func withClacQueue(src string) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.withQueue(src)
	}
}

func withClacFunc(name, body string) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.withFunc(name, body)
	}
}

func expectClacError(err error) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.expectError(err)
	}
}

func expectClacStack(values ...int32) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.expectStack(values...)
	}
}

func expectClacQueue(src string) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.expectQueue(src)
	}
}

func expectClacFunc(name, body string) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.expectFunc(name, body)
	}
}

func expectClacFuncs(names ...string) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.expectFuncs(names...)
	}
}

func expectClacOutput(output string) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.expectOutput(output)
	}
}

func expectClacDump(dump string) func(clacTestCase) clacTestCase {
	return func(ct clacTestCase) clacTestCase {
		return ct.expectDump(dump)
	}
}
