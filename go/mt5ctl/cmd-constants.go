package main

import (
	"context"
	"fmt"
)

type cmdConstants struct {
	Connection connection `group:"Connection"`
}

func (cmd cmdConstants) Execute(_ []string) error {
	var ctx = context.Background()
	var c, err = cmd.Connection.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	var constants = c.Constants()
	if constants == nil || constants.Len() == 0 {
		fmt.Println("no constants loaded")
		return nil
	}
	for _, name := range constants.Names() {
		var value, _ = constants.Get(name)
		fmt.Printf("%s = %d\n", name, value)
	}
	return nil
}
