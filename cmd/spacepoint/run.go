package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/spacepoint/spacepoint-go"
	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/session"
)

// Options configures one CLI invocation.
type Options struct {
	URL     string `short:"u" long:"url" description:"service base URL (defaults to the local service)"`
	Session string `short:"s" long:"session" description:"session snapshot file; in-memory when omitted"`
	Method  string `short:"X" long:"method" default:"GET" description:"HTTP method for call"`
	Data    string `short:"d" long:"data" description:"JSON request body for call"`
	Args    struct {
		Command string   `positional-arg-name:"command" description:"login | call | whoami | logout"`
		Rest    []string `positional-arg-name:"args"`
	} `positional-args:"yes"`
}

func run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if options.Args.Command == "" {
		return errors.New("usage: spacepoint [options] <login|call|whoami|logout>")
	}

	var clientOptions []spacepoint.Option
	if options.URL != "" {
		clientOptions = append(clientOptions, spacepoint.WithBaseURL(options.URL))
	} else {
		clientOptions = append(clientOptions, spacepoint.WithOrigin("http://localhost"))
	}
	if options.Session != "" {
		clientOptions = append(clientOptions, spacepoint.WithStore(session.NewFileStore(options.Session)))
	}
	clientOptions = append(clientOptions, spacepoint.WithOnSessionExpired(func() {
		fmt.Println("session expired, please login again")
	}))

	sp := spacepoint.New(clientOptions...)
	ctx := context.Background()

	switch options.Args.Command {
	case "login":
		if len(options.Args.Rest) != 2 {
			return errors.New("usage: spacepoint login <username> <password>")
		}
		login, err := sp.Auth().Login(ctx, options.Args.Rest[0], options.Args.Rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", login.Username, login.Role)
		return nil
	case "call":
		if len(options.Args.Rest) != 1 {
			return errors.New("usage: spacepoint call <path>")
		}
		requestOptions := []client.RequestOption{client.WithMethod(strings.ToUpper(options.Method))}
		if options.Data != "" {
			requestOptions = append(requestOptions, client.WithJSONBody(json.RawMessage(options.Data)))
		}
		result, err := sp.Rest().Dispatch(ctx, options.Args.Rest[0], requestOptions...)
		if err != nil {
			return err
		}
		if result.NoContent {
			return nil
		}
		fmt.Println(string(result.Data))
		return nil
	case "whoami":
		store := sp.Session()
		if !store.Authenticated() {
			return errors.New("not logged in")
		}
		fmt.Printf("%s (%s)\n", store.FullName(), store.Role())
		return nil
	case "logout":
		return sp.Auth().Logout(ctx)
	default:
		return fmt.Errorf("unknown command %q", options.Args.Command)
	}
}
