// Package globals provides shared flag structures and argument parsing
// for CLI commands.
package globals

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/pkg/errors"
)

// PageFlags selects which pages of a listing a command prints.
type PageFlags struct {
	// Page fetches exactly one page when positive.
	Page int
	// Pages walks the listing from the first page through this many pages.
	Pages int
}

// AddPageFlags adds paging flags to a command.
func AddPageFlags(cmd *cobra.Command) *PageFlags {
	flags := &PageFlags{}

	cmd.Flags().IntVarP(&flags.Page, "page", "p", 0,
		"Fetch a single page")
	cmd.Flags().IntVar(&flags.Pages, "pages", 1,
		"Number of pages to walk from the first page")

	return flags
}

// Validate rejects non-positive page counts.
func (f *PageFlags) Validate() error {
	if f.Page < 0 {
		return errors.NewValidationError("page", f.Page, "must be positive")
	}
	if f.Pages < 1 {
		return errors.NewValidationError("pages", f.Pages, "must be at least 1")
	}
	return nil
}

// OptionalString returns the flag's value when the user set it and nil
// otherwise, so an explicitly empty value still reaches the API.
func OptionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	val := mustGetString(cmd, name)
	return &val
}

// ParseIDs accepts ids as separate arguments, comma lists, or both.
func ParseIDs(args []string) ([]int, error) {
	var ids []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			id, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.NewValidationError("id", field, "must be an integer")
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
