package main

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"
)

var listwebhooks = cli.Command{
	Name:  "listwebhooks",
	Usage: "list all webhooks registered for some event",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "event",
			Usage: "the event to filter hooks by",
		},
	},
	Action: listWebhooksAction,
}

func listWebhooksAction(ctx *cli.Context) error {
	apiPath := "/v1/webhooks"
	if event := ctx.String("event"); event != "" {
		apiPath = fmt.Sprintf("%s?event=%s", apiPath, url.QueryEscape(event))
	}

	resp, err := getRequest(apiPath)
	if err != nil {
		return err
	}

	printRespJSON(resp)
	return nil
}
