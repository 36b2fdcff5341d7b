package main

import (
	"github.com/urfave/cli/v2"
)

var distributionstats = cli.Command{
	Name:   "stats",
	Usage:  "get the all-time totals of the processed distributions",
	Action: distributionStatsAction,
}

func distributionStatsAction(ctx *cli.Context) error {
	resp, err := getRequest("/v1/distributions/stats")
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
