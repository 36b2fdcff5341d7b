package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var listdistributions = cli.Command{
	Name:  "listdistributions",
	Usage: "list the processed fee distributions, most recent first",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "page",
			Usage: "the number of the page to request",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "the size of the page to request",
			Value: 10,
		},
	},
	Action: listDistributionsAction,
}

func listDistributionsAction(ctx *cli.Context) error {
	resp, err := getRequest(fmt.Sprintf(
		"/v1/distributions?page=%d&size=%d",
		ctx.Int("page"), ctx.Int("size"),
	))
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
