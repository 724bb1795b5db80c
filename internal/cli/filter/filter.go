// Package filter holds the cli commands that edit the saved search filters
//
// e.g., dotoo filter ...
package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/user"
)

// FilterCmd returns the filter parent command
func FilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Manage the saved search filters",
		Long: `Search filters narrow every view of the active project. Set fields are
combined with AND; unset fields impose no constraint.`,
	}

	cmd.AddCommand(SetCmd())
	cmd.AddCommand(UnsetCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}

// SetCmd returns the filter set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Merge fields into the saved filters",
		Long: `Merge the given fields into the saved filters. Fields you do not pass keep
their current value. Passing a field with an empty value unsets it; use
'dotoo filter clear' to start over.

Examples:
  dotoo filter set --query=login --priority=high
  dotoo filter set --overdue=true
  dotoo filter set --tags=api,backend
  dotoo filter set --query=
`,
		RunE: runSet,
	}

	cmd.Flags().String("query", "", "Free text matched against title, description, tags and branch")
	cmd.Flags().String("category", "", "Exact category")
	cmd.Flags().String("priority", "", "Exact priority")
	cmd.Flags().String("status", "", "Exact status")
	cmd.Flags().StringSlice("tags", nil, "Match tasks with any of these tags")
	cmd.Flags().String("has-code", "", "true or false")
	cmd.Flags().String("has-due", "", "true or false")
	cmd.Flags().String("overdue", "", "true or false")
	cmd.Flags().String("project", "", "Project id to match instead of the active one")
	cmd.Flags().String("assigned", "", "Exact assignee (me for yourself)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		patch, unset, err := buildPatch(cmd)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
		}

		svc := c.App.TaskService
		if err := svc.SetSearchFilters(c.Context(), patch); err != nil {
			return formatter.Fail(err)
		}
		if len(unset) > 0 {
			if err := svc.UnsetFilters(c.Context(), unset...); err != nil {
				return formatter.Fail(err)
			}
		}
		return printFilters(formatter, svc.SearchFilters(), len(svc.FilteredTasks()))
	})
}

// UnsetCmd returns the filter unset subcommand
func UnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <field>...",
		Short: "Reset individual filters",
		Long: `Reset the named filters to unconstrained and keep the rest.

Fields: ` + strings.Join(models.FilterFields, ", ") + `

Examples:
  dotoo filter unset query
  dotoo filter unset has-code overdue
`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: models.FilterFields,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				svc := c.App.TaskService
				if err := svc.UnsetFilters(c.Context(), args...); err != nil {
					if errors.Is(err, models.ErrUnknownFilterField) {
						return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err,
							"Valid fields: "+strings.Join(models.FilterFields, ", "))
					}
					return formatter.Fail(err)
				}
				return printFilters(formatter, svc.SearchFilters(), len(svc.FilteredTasks()))
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// ShowCmd returns the filter show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				svc := c.App.TaskService
				return printFilters(formatter, svc.SearchFilters(), len(svc.FilteredTasks()))
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// ClearCmd returns the filter clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Reset every filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
				svc := c.App.TaskService
				if err := svc.ClearFilters(c.Context()); err != nil {
					return formatter.Fail(err)
				}
				return printFilters(formatter, svc.SearchFilters(), len(svc.FilteredTasks()))
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// buildPatch reads the set flags. A flag passed with an empty value lands in
// unset instead of the patch.
func buildPatch(cmd *cobra.Command) (patch models.SearchFilters, unset []string, err error) {
	flags := cmd.Flags()
	value := func(name string) string {
		v, _ := flags.GetString(name)
		if v == "" && flags.Changed(name) {
			unset = append(unset, name)
		}
		return v
	}

	patch.Query = value(models.FilterQuery)

	if v := value(models.FilterCategory); v != "" {
		cat, err := models.ParseCategory(v)
		if err != nil {
			return patch, nil, err
		}
		patch.Category = &cat
	}
	if v := value(models.FilterPriority); v != "" {
		p, err := models.ParsePriority(v)
		if err != nil {
			return patch, nil, err
		}
		patch.Priority = &p
	}
	if v := value(models.FilterStatus); v != "" {
		s, err := models.ParseStatus(v)
		if err != nil {
			return patch, nil, err
		}
		patch.Status = &s
	}
	if flags.Changed(models.FilterTags) {
		patch.Tags, _ = flags.GetStringSlice(models.FilterTags)
		if patch.Tags == nil {
			patch.Tags = []string{}
		}
	}

	tri := []struct {
		name   string
		target **bool
	}{
		{models.FilterHasCode, &patch.HasCode},
		{models.FilterHasDueDate, &patch.HasDueDate},
		{models.FilterIsOverdue, &patch.IsOverdue},
	}
	for _, f := range tri {
		v := value(f.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return patch, nil, fmt.Errorf("--%s must be true or false, got '%s'", f.name, v)
		}
		*f.target = &b
	}

	if v := value(models.FilterProject); v != "" {
		patch.ProjectID = &v
	}
	if v := value(models.FilterAssigned); v != "" {
		v = user.ResolveAssignee(v)
		patch.AssignedTo = &v
	}
	return patch, unset, nil
}

// filterView is the JSON shape of the saved filters
type filterView struct {
	Filters models.SearchFilters `json:"filters"`
	Matches int                  `json:"matches"`
}

func printFilters(formatter *cli.OutputFormatter, f models.SearchFilters, matches int) error {
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(filterView{Filters: f, Matches: matches})
	}

	active := describe(f)
	if len(active) == 0 {
		fmt.Println("No filters set")
	}
	for _, line := range active {
		fmt.Println("  " + line)
	}
	fmt.Println(styles.MutedStyle.Render(fmt.Sprintf("%d matching tasks", matches)))
	return nil
}

func describe(f models.SearchFilters) []string {
	var out []string
	add := func(label, value string) {
		out = append(out, styles.LabelStyle.Render(label+":")+" "+styles.ValueStyle.Render(value))
	}
	if f.Query != "" {
		add("Query", f.Query)
	}
	if f.Category != nil {
		add("Category", string(*f.Category))
	}
	if f.Priority != nil {
		add("Priority", string(*f.Priority))
	}
	if f.Status != nil {
		add("Status", string(*f.Status))
	}
	if len(f.Tags) > 0 {
		add("Tags", strings.Join(f.Tags, ", "))
	}
	if f.HasCode != nil {
		add("Has code", strconv.FormatBool(*f.HasCode))
	}
	if f.HasDueDate != nil {
		add("Has due date", strconv.FormatBool(*f.HasDueDate))
	}
	if f.IsOverdue != nil {
		add("Overdue", strconv.FormatBool(*f.IsOverdue))
	}
	if f.ProjectID != nil {
		add("Project", *f.ProjectID)
	}
	if f.AssignedTo != nil {
		add("Assigned", *f.AssignedTo)
	}
	return out
}
