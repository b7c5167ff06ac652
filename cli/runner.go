package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/viant/apiclient"
	"github.com/viant/apiclient/client"
)

// ErrNoPath is returned when neither a request path nor a token command is given
var ErrNoPath = errors.New("request path is required")

// Run executes a single API request described by args and prints the result to stdout
func Run(args []string) error {
	return RunWithOutput(context.Background(), args, os.Stdout)
}

// RunWithOutput executes a single API request described by args and prints the result to output
func RunWithOutput(ctx context.Context, args []string, output io.Writer) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	fromConfig, err := apiclient.LoadOptions(options.Config)
	if err != nil {
		return err
	}
	options.Inherit(fromConfig)
	if options.Store == "" {
		options.Store = defaultStoreURL()
	}
	cli, err := apiclient.NewClient(ctx, &options.ClientOptions)
	if err != nil {
		return err
	}
	switch {
	case options.Logout:
		if err = cli.SetToken(ctx, ""); err != nil {
			return err
		}
	case options.Token != "":
		if err = cli.SetToken(ctx, options.Token); err != nil {
			return err
		}
	}
	if options.Args.Path == "" {
		if options.Logout || options.Token != "" {
			return nil
		}
		return ErrNoPath
	}
	request, err := options.request()
	if err != nil {
		return err
	}
	result, err := cli.Execute(ctx, options.Args.Path, request)
	if err != nil {
		if reqErr, ok := client.AsRequestError(err); ok && reqErr.Payload != nil {
			_ = write(output, reqErr.Payload)
		}
		return err
	}
	return write(output, result)
}

func (o *Options) request() (*client.Options, error) {
	ret := &client.Options{Method: strings.ToUpper(o.Method)}
	if o.Data != "" {
		if !json.Valid([]byte(o.Data)) {
			return nil, fmt.Errorf("invalid JSON data: %v", o.Data)
		}
		ret.Data = json.RawMessage(o.Data)
	}
	if len(o.Headers) > 0 {
		ret.Headers = map[string]string{}
		for _, header := range o.Headers {
			key, value, ok := strings.Cut(header, ":")
			if !ok {
				return nil, fmt.Errorf("invalid header %q, expected key:value", header)
			}
			ret.Headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	params, err := parseParams(o.Params)
	if err != nil {
		return nil, err
	}
	ret.Params = params
	return ret, nil
}

// parseParams groups repeated keys into lists, keeping first occurrence order
func parseParams(values []string) (client.Params, error) {
	var keys []string
	grouped := map[string][]string{}
	for _, item := range values {
		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, expected key=value", item)
		}
		if _, seen := grouped[key]; !seen {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], value)
	}
	var ret client.Params
	for _, key := range keys {
		if values := grouped[key]; len(values) == 1 {
			ret = ret.Add(key, values[0])
		} else {
			ret = ret.Add(key, values)
		}
	}
	return ret, nil
}

func write(output io.Writer, value any) error {
	switch actual := value.(type) {
	case nil:
		return nil
	case string:
		_, err := fmt.Fprintln(output, actual)
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, string(data))
	return err
}

func defaultStoreURL() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".apiclient", "store.json")
}
