// Bytes-until example: read raw bytes up to (and including) a newline.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/input"
)

func main() {
	r, err := input.New(
		input.WithPrompt("Type something and press Enter: "),
		input.WithBytesUntil("\n"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	v, err := r.Read()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nRead %d bytes: % x\n", len(v.Bytes()), v.Bytes())
}
