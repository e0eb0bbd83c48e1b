package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/razorgen"
	"github.com/fwojciec/razorgen/yaml"
)

// Run executes the init command.
func (c *InitCmd) Run(deps *Dependencies) error {
	path := deps.resolve(c.Path)

	if !c.Force {
		if _, err := os.Stat(path); err == nil {
			err := razorgen.Errorf(razorgen.EINVALID, "%s already exists, use --force to overwrite", c.Path)
			fmt.Fprintf(deps.Stderr, "error: %s\n", razorgen.ErrorMessage(err))
			return err
		}
	}

	if err := yaml.WriteConfig(path, razorgen.DefaultConfig()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Path)
	return nil
}
