package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var balance = cli.Command{
	Name:  "balance",
	Usage: "get the custody wallet balance",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "asset",
			Usage: "the asset to get the balance of, defaults to the settlement asset",
		},
	},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	apiPath := "/v1/balance"
	if asset := ctx.String("asset"); asset != "" {
		apiPath = fmt.Sprintf("%s?asset=%s", apiPath, asset)
	}

	resp, err := getRequest(apiPath)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
