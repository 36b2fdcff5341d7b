package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"

	feesplitDataDir = btcutil.AppDataDir("feesplit-operator", false)
	statePath       = path.Join(feesplitDataDir, "state.json")

	httpClient = &http.Client{Timeout: 15 * time.Second}
)

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "feesplit operator CLI"
	app.Usage = "Command line interface for feesplitd daemon operators"
	app.Commands = append(
		app.Commands,
		&config,
		&info,
		&policy,
		&developer,
		&updatedeveloper,
		&listdistributions,
		&distributionstats,
		&balance,
		&addwebhook,
		&removewebhook,
		&listwebhooks,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	// nolint
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(feesplitDataDir); os.IsNotExist(err) {
		// nolint
		os.Mkdir(feesplitDataDir, os.ModeDir|0755)
	}

	file, err := os.OpenFile(statePath, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	currentData, err := getState()
	if err != nil {
		return err
	}

	mergedData := merge(currentData, data)

	jsonString, err := json.Marshal(mergedData)
	if err != nil {
		return err
	}
	if err := os.WriteFile(statePath, jsonString, 0755); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func merge(maps ...map[string]string) map[string]string {
	merge := make(map[string]string, 0)
	for _, m := range maps {
		for k, v := range m {
			merge[k] = v
		}
	}
	return merge
}

func getBaseURL() (string, error) {
	state, err := getState()
	if err != nil {
		return "", err
	}
	addr, ok := state["rpcserver"]
	if !ok {
		return "", errors.New("set rpcserver with `config set rpcserver`")
	}
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = fmt.Sprintf("http://%s", addr)
	}
	return addr, nil
}

func getRequest(apiPath string) (string, error) {
	baseURL, err := getBaseURL()
	if err != nil {
		return "", err
	}
	resp, err := httpClient.Get(fmt.Sprintf("%s%s", baseURL, apiPath))
	if err != nil {
		return "", err
	}
	return readResponse(resp)
}

func postRequest(apiPath string, payload interface{}) (string, error) {
	baseURL, err := getBaseURL()
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	resp, err := httpClient.Post(
		fmt.Sprintf("%s%s", baseURL, apiPath),
		"application/json", bytes.NewReader(body),
	)
	if err != nil {
		return "", err
	}
	return readResponse(resp)
}

func deleteRequest(apiPath string) (string, error) {
	baseURL, err := getBaseURL()
	if err != nil {
		return "", err
	}
	req, err := http.NewRequest(
		http.MethodDelete, fmt.Sprintf("%s%s", baseURL, apiPath), nil,
	)
	if err != nil {
		return "", err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	return readResponse(resp)
}

func readResponse(resp *http.Response) (string, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		reply := map[string]string{}
		if err := json.Unmarshal(body, &reply); err == nil && reply["error"] != "" {
			return "", errors.New(reply["error"])
		}
		return "", errors.New(string(body))
	}
	return string(body), nil
}

func printRespJSON(resp string) {
	var indented bytes.Buffer
	if err := json.Indent(&indented, []byte(resp), "", "\t"); err != nil {
		fmt.Println(resp)
		return
	}
	fmt.Println(indented.String())
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[feesplit] %v\n", err)
	}
	os.Exit(1)
}
