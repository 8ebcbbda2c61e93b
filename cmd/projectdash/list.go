package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rpggio/projectdash/internal/domain/display"
	"github.com/rpggio/projectdash/internal/domain/view"
	"github.com/rpggio/projectdash/internal/render"
)

var (
	listFilter string
	listSearch string
	listSort   string
	listWidth  int
	// listNow pins the clock; tests set it.
	listNow func() time.Time = time.Now
)

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "all, active, completed or onhold")
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive text in title or description")
	listCmd.Flags().StringVar(&listSort, "sort", "", "latest, oldest, priority or deadline")
	listCmd.Flags().IntVar(&listWidth, "width", 0, "card width in columns")
}

// listCmd prints the sample dashboard
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the sample dashboard as cards",
	Long: `Load the sample projects and print the visible ones as cards.

Examples:
  # Everything, in insertion order
  projectdash list

  # Active projects, most urgent first
  projectdash list --filter active --sort priority

  # Search titles and descriptions
  projectdash list --search migration`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	filter, err := view.ParseFilter(listFilter)
	if err != nil {
		return err
	}
	sort, err := view.ParseSort(listSort)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	now := listNow()
	if err := a.seed(cmd.Context(), now); err != nil {
		return err
	}

	projects, err := a.projects.List(cmd.Context())
	if err != nil {
		return err
	}
	visible := view.Apply(projects, view.Selection{Filter: filter, Search: listSearch, Sort: sort})

	return render.New(cmd.OutOrStdout(), listWidth).Write(display.NewCards(visible, now))
}
