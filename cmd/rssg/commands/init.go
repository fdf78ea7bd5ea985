package commands

import (
	"fmt"

	"github.com/jcerise/rssg/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration and theme files"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	fmt.Printf("Initializing site around %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	fmt.Println("Initialized. Run 'rssg build' to generate the site.")
	return nil
}
