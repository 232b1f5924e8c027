package list

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/internal/appcontext"
	"github.com/agentstation/rmbrowse/internal/cmd/output"
	"github.com/agentstation/rmbrowse/pkg/constants"
	"github.com/agentstation/rmbrowse/pkg/pager"
)

// walk advances c through at most pages pages and returns what it collected.
func walk[T any](ctx context.Context, c *pager.Cursor[T], pages int) ([]T, error) {
	defer c.Close()
	for range pages {
		ok, err := c.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	return c.Items(), nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), constants.CommandTimeout)
}

func render(cmd *cobra.Command, app appcontext.Interface, count int, kind string, rows func(wide bool) any, raw any) error {
	app.Logger().Debug().Int("count", count).Str("kind", kind).Msg("listed")
	format := output.DetectFormat(app.OutputFormat())
	return output.Write(cmd.OutOrStdout(), format, rows, raw)
}
