package main

import (
	"encoding/json"

	"github.com/urfave/cli/v2"
)

var policy = cli.Command{
	Name:   "policy",
	Usage:  "get the fee policy applied to every settled trade",
	Action: policyAction,
}

func policyAction(ctx *cli.Context) error {
	resp, err := getRequest("/v1/info")
	if err != nil {
		return err
	}

	reply := struct {
		FeePolicy json.RawMessage `json:"fee_policy"`
	}{}
	if err := json.Unmarshal([]byte(resp), &reply); err != nil {
		return err
	}

	printRespJSON(string(reply.FeePolicy))
	return nil
}
