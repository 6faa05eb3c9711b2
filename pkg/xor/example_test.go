package xor_test

import (
	"fmt"

	"github.com/saylorsolutions/bufops/pkg/xor"
)

func ExampleApply() {
	buf := []byte{0x41, 0x42, 0x43}
	key := []byte{0xFF}

	xor.Apply(buf, key)
	fmt.Printf("% x\n", buf)
	xor.Apply(buf, key)
	fmt.Printf("% x\n", buf)
	// Output:
	// be bd bc
	// 41 42 43
}
