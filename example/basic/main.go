// Basic example: prompt for a line of text.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/input"
)

func main() {
	r, err := input.New(input.WithPrompt("Enter your name: "))
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	v, err := r.Read()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Hello, %s!\n", v.Text())
}
