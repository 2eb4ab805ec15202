package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shhac/postie/internal/domain"
	"github.com/shhac/postie/internal/format"
	"github.com/shhac/postie/internal/highlight"
	"github.com/shhac/postie/internal/model"
)

type sendOptions struct {
	method   string
	env      string
	baseURL  string
	path     string
	query    string
	token    string
	data     string
	dataFile string
	timeout  time.Duration
}

func newSendCommand(opts *rootOptions) *cobra.Command {
	var so sendOptions

	cmd := &cobra.Command{
		Use:   "send [path]",
		Short: "Send one request and print the response",
		Example: `  postie-web send /api/users --query id=1
  postie-web send -X POST /api/users -d '{"name":"ada"}' --token $TOKEN
  postie-web send --env production --base-url https://api.example.com /health`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				so.path = args[0]
			}
			return runSend(cmd, opts, so)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&so.method, "method", "X", "GET", "HTTP method (GET, POST, PUT)")
	f.StringVar(&so.env, "env", string(domain.EnvDevelopment), "environment whose saved base URL is used")
	f.StringVar(&so.baseURL, "base-url", "", "base URL (overrides the saved one)")
	f.StringVar(&so.path, "path", "", "request path")
	f.StringVarP(&so.query, "query", "q", "", "query string without the leading ?")
	f.StringVar(&so.token, "token", "", "bearer token")
	f.StringVarP(&so.data, "data", "d", "", "JSON body")
	f.StringVar(&so.dataFile, "data-file", "", "read the JSON body from a file (- for stdin)")
	f.DurationVar(&so.timeout, "timeout", 0, "request timeout (0 uses config)")
	return cmd
}

func runSend(cmd *cobra.Command, opts *rootOptions, so sendOptions) error {
	method, err := domain.ParseMethod(so.method)
	if err != nil {
		return err
	}
	env, err := domain.ParseEnvironment(so.env)
	if err != nil {
		return err
	}

	body := so.data
	if so.dataFile != "" {
		body, err = readBody(cmd.InOrStdin(), so.dataFile)
		if err != nil {
			return err
		}
	}

	services, err := opts.services()
	if err != nil {
		return err
	}
	if so.timeout > 0 {
		services.Pipeline.SetTimeout(so.timeout)
	}

	baseURL := so.baseURL
	if baseURL == "" {
		baseURL = services.Environments.SavedURL(env)
	}

	result, err := services.Submitter.Submit(cmd.Context(), domain.RequestConfig{
		Method:      method,
		BaseURL:     baseURL,
		Path:        so.path,
		QueryString: so.query,
		UseAuth:     so.token != "",
		Token:       so.token,
		JSONBody:    body,
	})

	if result.Failed() {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintln(cmd.ErrOrStderr(), red(result.ErrorMessage))
		return ErrReported
	}
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// ErrReported is returned when the failure was already printed.
var ErrReported = errors.New("reported")

func printResult(w io.Writer, result domain.ResponseResult) {
	bucket := format.Classify(result.StatusCode)
	faint := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "%s %s\n",
		highlight.Status(format.StatusLabel(result.StatusCode), bucket),
		faint(fmt.Sprintf("(%s, %s)", model.FormatDuration(result.Duration), model.FormatSize(result.Size))),
	)
	fmt.Fprintln(w, highlight.ANSI(result.BodyText))
}

func readBody(stdin io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(b), nil
}
