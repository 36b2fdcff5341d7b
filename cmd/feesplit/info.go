package main

import (
	"github.com/urfave/cli/v2"
)

var info = cli.Command{
	Name:   "info",
	Usage:  "get info about the daemon, its fee policy and config",
	Action: infoAction,
}

func infoAction(ctx *cli.Context) error {
	resp, err := getRequest("/v1/info")
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
