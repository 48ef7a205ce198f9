package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvonwaldner/irr/internal/api"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	File string
}

// NewSolveCommand creates the solve command. It reads one request body, the
// same JSON accepted by POST /v1/irr, and writes the response.
func NewSolveCommand(root *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one IRR request read from stdin or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if opts.File != "" && opts.File != "-" {
				f, err := os.Open(opts.File)
				if err != nil {
					return fmt.Errorf("open request: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runSolve(in, cmd.OutOrStdout(), root.Logger())
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "request file (default stdin)")

	return cmd
}

func runSolve(in io.Reader, out io.Writer, log *slog.Logger) error {
	req, err := api.DecodeIRRRequest(in)
	if err != nil {
		return err
	}

	resp := req.Solve()
	log.Debug("irr solved",
		slog.Int("cash_flows", len(req.CashFlows)),
		slog.Bool("converged", resp.Converged),
		slog.Int("iterations", resp.Iterations),
	)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
