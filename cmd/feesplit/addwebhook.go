package main

import (
	"encoding/json"
	"fmt"

	"github.com/thanhpk/randstr"
	"github.com/urfave/cli/v2"
)

var addwebhook = cli.Command{
	Name:  "addwebhook",
	Usage: "add a webhook registered for some event",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "the endpoint where to notify the webhook",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "secret",
			Usage: "the eventual secret to authenticate notifications",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "event",
			Usage: "the event for which the webhook gets notified",
		},
		&cli.BoolFlag{
			Name:  "generate-secret",
			Usage: "generate a random secret to authenticate notifications",
		},
	},
	Action: addWebhookAction,
}

func addWebhookAction(ctx *cli.Context) error {
	endpoint := ctx.String("endpoint")
	event := ctx.String("event")
	if endpoint == "" || event == "" {
		return &invalidUsageError{ctx, "addwebhook"}
	}

	secret := ctx.String("secret")
	if ctx.Bool("generate-secret") {
		if secret != "" {
			return fmt.Errorf("either set a secret or generate one, not both")
		}
		secret = randstr.Hex(32)
	}

	resp, err := postRequest("/v1/webhooks", map[string]string{
		"event":    event,
		"endpoint": endpoint,
		"secret":   secret,
	})
	if err != nil {
		return err
	}

	reply := struct {
		ID string `json:"id"`
	}{}
	if err := json.Unmarshal([]byte(resp), &reply); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("hook id:", reply.ID)
	if ctx.Bool("generate-secret") {
		fmt.Println("secret:", secret)
	}
	return nil
}
