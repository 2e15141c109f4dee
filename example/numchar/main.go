// Numchar example: read exactly two keystrokes without echo.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/input"
)

func main() {
	r, err := input.New(
		input.WithPrompt("Press two keys: "),
		input.WithNumChars(2),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	v, err := r.Read()
	if errors.Is(err, input.ErrInterrupted) {
		fmt.Println("\ncancelled")
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nYou pressed: %q\n", v.Text())
}
