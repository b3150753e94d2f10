// example_test.go: runnable documentation example
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus_test

import (
	"fmt"

	"github.com/agilira/xanthus"
)

func Example() {
	reg := xanthus.NewRegistry(xanthus.DefaultConfig())
	defer reg.Close()

	list := xanthus.NewOrderedList(reg)

	p, err := reg.Join()
	if err != nil {
		panic(err)
	}

	list.Insert(p, 42)
	fmt.Println(list.Contains(p, 42))
	list.Delete(p, 42)
	fmt.Println(list.Contains(p, 42))

	// Output:
	// true
	// false
}
