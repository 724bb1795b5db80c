// Package calendar holds the calendar view commands
//
// e.g., dotoo calendar ...
package calendar

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/dotoo/internal/cli"
	"github.com/thenoetrevino/dotoo/internal/cli/render"
	"github.com/thenoetrevino/dotoo/internal/cli/styles"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/views/calendar"
)

// CalendarCmd returns the calendar command
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show filtered tasks on a month, week or year calendar",
		Long: `Show the filtered tasks of the active project bucketed by due date.

Examples:
  dotoo calendar                        # this month
  dotoo calendar --zoom=week --offset=1 # next week
  dotoo calendar --date=2025-07         # July 2025
  dotoo calendar --zoom=year --json
`,
		RunE: runCalendar,
	}

	cmd.Flags().String("zoom", string(calendar.ZoomMonth), "Zoom level (month, week, year)")
	cmd.Flags().String("date", "", "Date to show (YYYY-MM or YYYY-MM-DD, default today)")
	cmd.Flags().Int("offset", 0, "Steps forward (or back, when negative) from --date at the zoom level")
	cmd.Flags().Bool("hide-completed", false, "Leave done tasks off the grid")
	cli.AddOutputFlags(cmd)

	cmd.AddCommand(RescheduleCmd())

	return cmd
}

func runCalendar(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		loc := c.App.Location
		now := c.App.Now().In(loc)
		warningDays := c.App.Config.Calendar.WarningDays

		nav, err := navigator(cmd, now, loc)
		if err != nil {
			return formatter.FailWith(cli.ExitValidation, "VALIDATION_ERROR", err, "")
		}

		hide, _ := cmd.Flags().GetBool("hide-completed")
		filtered := c.App.TaskService.FilteredTasks()
		tasks := calendar.Visible(filtered, !hide)

		header := calendar.Header(nav.Cursor, nav.Zoom, loc)
		overdue := calendar.WithClassification(filtered, calendar.Overdue, now, warningDays)
		dueSoon := calendar.WithClassification(filtered, calendar.Warning, now, warningDays)

		opts := render.CalendarOptions{Now: now, WarningDays: warningDays}
		var grid string
		var view calendarView
		switch nav.Zoom {
		case calendar.ZoomWeek:
			days := calendar.Week(tasks, nav.Cursor, now, loc)
			grid = render.Week(days, opts)
			view.Days = jsonDays(days)
		case calendar.ZoomYear:
			year := calendar.Year(tasks, nav.Cursor.Year(), now, loc)
			grid = render.Year(year, opts)
			for _, m := range year.Months {
				view.Months = append(view.Months, monthCount{Month: m.Month.String(), TaskCount: m.TaskCount})
			}
			view.TaskCount = year.TaskCount()
		default:
			month := calendar.Month(tasks, nav.Cursor.Year(), nav.Cursor.Month(), now, loc)
			grid = render.Month(month, opts)
			view.Days = jsonDays(month.Days)
			view.TaskCount = month.TaskCount
		}

		if formatter.Quiet {
			for _, id := range ids(tasks) {
				fmt.Println(id)
			}
			return nil
		}
		if formatter.JSON {
			view.Zoom = nav.Zoom
			view.Header = header
			view.Cursor = nav.Cursor.Format(time.DateOnly)
			view.Overdue = ids(overdue)
			view.DueSoon = ids(dueSoon)
			view.NoDueDate = ids(calendar.NoDueDate(tasks))
			return formatter.Success(view)
		}

		fmt.Println(styles.TitleStyle.Render(header))
		fmt.Println(grid)
		printSideList("Overdue", overdue, now, warningDays)
		printSideList(fmt.Sprintf("Due within %d days", warningDays), dueSoon, now, warningDays)
		if undated := render.Undated(tasks); undated != "" {
			fmt.Println(undated)
		}
		return nil
	})
}

func navigator(cmd *cobra.Command, now time.Time, loc *time.Location) (*calendar.Navigator, error) {
	zoomFlag, _ := cmd.Flags().GetString("zoom")
	zoom, err := calendar.ParseZoom(zoomFlag)
	if err != nil {
		return nil, err
	}

	nav := &calendar.Navigator{Zoom: zoom}
	nav.Today(now)
	if v, _ := cmd.Flags().GetString("date"); v != "" {
		cursor, err := cli.ParseMonth(v, loc)
		if err != nil {
			return nil, err
		}
		nav.Cursor = cursor
	}

	offset, _ := cmd.Flags().GetInt("offset")
	for ; offset > 0; offset-- {
		nav.Next()
	}
	for ; offset < 0; offset++ {
		nav.Prev()
	}
	return nav, nil
}

func printSideList(title string, tasks []*models.Task, now time.Time, warningDays int) {
	if len(tasks) == 0 {
		return
	}
	fmt.Println(styles.SectionStyle.Render(fmt.Sprintf("%s (%d)", title, len(tasks))))
	for _, t := range tasks {
		fmt.Println("  " + render.TaskLine(t, now, warningDays))
	}
}

// calendarView is the JSON shape of a rendered calendar
type calendarView struct {
	Zoom      calendar.Zoom `json:"zoom"`
	Header    string        `json:"header"`
	Cursor    string        `json:"cursor"`
	TaskCount int           `json:"taskCount"`
	Days      []dayView     `json:"days,omitempty"`
	Months    []monthCount  `json:"months,omitempty"`
	Overdue   []string      `json:"overdue"`
	DueSoon   []string      `json:"dueSoon"`
	NoDueDate []string      `json:"noDueDate"`
}

type dayView struct {
	Date           string   `json:"date"`
	Key            string   `json:"key"`
	IsCurrentMonth bool     `json:"isCurrentMonth"`
	IsToday        bool     `json:"isToday"`
	Tasks          []string `json:"tasks"`
}

type monthCount struct {
	Month     string `json:"month"`
	TaskCount int    `json:"taskCount"`
}

func jsonDays(days []calendar.Day) []dayView {
	out := make([]dayView, len(days))
	for i, d := range days {
		out[i] = dayView{
			Date:           d.Date.Format(time.DateOnly),
			Key:            d.Key,
			IsCurrentMonth: d.IsCurrentMonth,
			IsToday:        d.IsToday,
			Tasks:          ids(d.Tasks),
		}
	}
	return out
}

func ids(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
