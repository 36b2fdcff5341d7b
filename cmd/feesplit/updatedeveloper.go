package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var updatedeveloper = cli.Command{
	Name:  "updatedeveloper",
	Usage: "rotate the developer payout address",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "caller",
			Usage: "the current developer address authorizing the rotation",
		},
		&cli.StringFlag{
			Name:  "address",
			Usage: "the new developer payout address",
		},
	},
	Action: updateDeveloperAction,
}

func updateDeveloperAction(ctx *cli.Context) error {
	caller := ctx.String("caller")
	address := ctx.String("address")
	if caller == "" || address == "" {
		return &invalidUsageError{ctx, "updatedeveloper"}
	}

	resp, err := postRequest("/v1/developer/address", map[string]string{
		"caller":      caller,
		"new_address": address,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("developer address updated")
	printRespJSON(resp)
	return nil
}
