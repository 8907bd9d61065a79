// Package printers holds the interactive terminal prompts.
package printers

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// IPrinters abstracts interactive prompts so commands can be tested with a
// canned implementation.
type IPrinters interface {
	Confirm(message string) bool
}

type Printers struct{}

// NewPrinters returns new printers struct
func NewPrinters() *Printers {
	return &Printers{}
}

// Confirm asks a y/n question and returns true on "y".
func (p Printers) Confirm(message string) bool {
	validate := func(input string) error {
		input = strings.ToLower(strings.TrimSpace(input))
		if input != "y" && input != "n" {
			return fmt.Errorf("wrong input %s, was expecting `y` or `n`", input)
		}

		return nil
	}

	prompt := promptui.Prompt{
		Label:    message + " Press (y/n)",
		Validate: validate,
	}

	result, err := prompt.Run()
	if err != nil {
		return false
	}

	return strings.ToLower(strings.TrimSpace(result)) == "y"
}
