package cli

import "github.com/viant/apiclient"

// Options represents command line options
type Options struct {
	apiclient.ClientOptions
	Config  string   `short:"c" long:"config" description:"YAML or JSON config file"`
	Method  string   `short:"X" long:"method" description:"HTTP method" default:"GET"`
	Data    string   `short:"d" long:"data" description:"JSON request body"`
	Params  []string `short:"p" long:"param" description:"query parameter key=value, repeat a key for a list"`
	Headers []string `short:"H" long:"header" description:"request header key:value"`
	Token   string   `long:"token" description:"store access token"`
	Logout  bool     `long:"logout" description:"remove stored access token"`
	Args    struct {
		Path string `positional-arg-name:"path" description:"request path, relative to API base"`
	} `positional-args:"yes"`
}
