package stringz_test

import (
	"fmt"

	"github.com/shaelmaar/out/stringz"
)

func ExampleReplaceAll() {
	fmt.Println(stringz.ReplaceAll("baa baa black sheep", "baa", "meow"))
	fmt.Println(stringz.ReplaceAll("Bobby", "b", "d"))
	// Output:
	// meow meow black sheep
	// Boddy
}

func ExampleContainsIgnoreCase() {
	fmt.Println(stringz.ContainsIgnoreCase("The quick brown fox", "CK BRO"))
	fmt.Println(stringz.ContainsIgnoreCase("1+1=2", "1+1"))
	// Output:
	// true
	// true
}
