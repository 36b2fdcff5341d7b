package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var removewebhook = cli.Command{
	Name:  "removewebhook",
	Usage: "remove a webhook",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "id",
			Usage: "the id of the webhook to remove",
			Value: "",
		},
	},
	Action: removeWebhookAction,
}

func removeWebhookAction(ctx *cli.Context) error {
	hookID := ctx.String("id")
	if hookID == "" {
		return &invalidUsageError{ctx, "removewebhook"}
	}

	if _, err := deleteRequest(fmt.Sprintf("/v1/webhooks/%s", hookID)); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("removed hook with id:", hookID)
	return nil
}
