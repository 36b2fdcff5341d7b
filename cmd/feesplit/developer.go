package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
)

var developer = cli.Command{
	Name:   "developer",
	Usage:  "get the current developer payout address",
	Action: developerAction,
}

func developerAction(ctx *cli.Context) error {
	resp, err := getRequest("/v1/info")
	if err != nil {
		return err
	}

	reply := struct {
		FeeConfig struct {
			DeveloperAddress string `json:"developer_address"`
		} `json:"fee_config"`
	}{}
	if err := json.Unmarshal([]byte(resp), &reply); err != nil {
		return err
	}

	fmt.Println(reply.FeeConfig.DeveloperAddress)
	return nil
}
