package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/todo-app-client/internal/pkg/config"
	"github.com/diwise/todo-app-client/pkg/todoapp/client"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	deployment string
	server     string
	apiKey     string
	debug      bool
}

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "todoctl - command line client for the todo app backend",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&f.configPath, "config", env.GetVariableOrDefault(ctx, "TODOAPP_CONFIG", ""), "Path to a deployment catalogue (yaml)")
	rootCmd.PersistentFlags().StringVar(&f.deployment, "deployment", env.GetVariableOrDefault(ctx, "TODOAPP_DEPLOYMENT", "default"), "Name of the deployment to talk to")
	rootCmd.PersistentFlags().StringVar(&f.server, "server", "", "Base URL that overrides the deployment default")
	rootCmd.PersistentFlags().StringVar(&f.apiKey, "api-key", env.GetVariableOrDefault(ctx, "TODOAPP_API_KEY", ""), "API key added to every request")
	rootCmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "Log failed requests and responses")

	rootCmd.AddCommand(
		newOperationsCmd(),
		newCallCmd(f),
		newInfoCmd(f),
	)

	return rootCmd
}

func newOperationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operations the backend exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPATH\tRESPONSE")

			for _, op := range client.Operations() {
				response := op.Response
				if op.Many {
					response = "[]" + response
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", op.Name, op.Path, response)
			}

			return w.Flush()
		},
	}
}

func newCallCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "call <operation> [json]",
		Short: "Call an operation with a json request body",
		Long:  "Call an operation by name (goalNew) or path (goal/new). The request body is read from stdin when it is not given as an argument.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := client.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown operation %s, see %s operations", args[0], appName)
			}

			var body []byte
			var err error

			if len(args) == 2 {
				body = []byte(args[1])
			} else {
				body, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read request body: %w", err)
				}
			}

			body, err = withAPIKey(body, f.apiKey)
			if err != nil {
				return err
			}

			c, _, err := newClient(f)
			if err != nil {
				return err
			}

			result := c.Raw(cmd.Context(), op, body, callOptions(f)...)

			err = printJSON(cmd.OutOrStdout(), result)
			if err != nil {
				return err
			}

			if !result.IsOk() {
				return fmt.Errorf("%s failed: %s", op.Name, result.Code())
			}

			return nil
		},
	}
}

func newInfoCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show service metadata of deployments that expose it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, deployment, err := newClient(f)
			if err != nil {
				return err
			}

			if !deployment.Info {
				return fmt.Errorf("deployment %s does not expose info", deployment.Name)
			}

			info, err := c.Info(cmd.Context(), callOptions(f)...)
			if err != nil {
				return fmt.Errorf("info failed: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

func newClient(f *flags) (client.TodoAppClient, *config.Deployment, error) {
	cfg := &config.Config{}

	if f.configPath != "" {
		file, err := os.Open(f.configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open deployment catalogue: %w", err)
		}
		defer file.Close()

		cfg, err = config.LoadConfiguration(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load deployment catalogue: %w", err)
		}
	}

	deployment, err := cfg.Deployment(f.deployment)
	if err != nil {
		return nil, nil, err
	}

	options := deployment.ClientOptions()
	if f.debug {
		options = append(options, client.Debug("true"))
	}

	return client.NewTodoAppClient(options...), deployment, nil
}

func callOptions(f *flags) []client.CallOption {
	if f.server == "" {
		return nil
	}
	return []client.CallOption{client.Server(f.server)}
}

// withAPIKey merges apiKey into a json object body. Numbers are kept as
// written so that large identifiers survive the round trip.
func withAPIKey(body []byte, apiKey string) ([]byte, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	if apiKey == "" {
		return body, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	request := map[string]any{}
	err := decoder.Decode(&request)
	if err != nil {
		return nil, fmt.Errorf("request body must be a json object: %w", err)
	}

	request["apiKey"] = apiKey

	return json.Marshal(request)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, strings.TrimSpace(string(b)))
	return err
}
