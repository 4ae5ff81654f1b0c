package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/arhaan/disha/internal/generate"
	"github.com/arhaan/disha/internal/roadmap"
	"github.com/arhaan/disha/internal/store"
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Manage study roadmaps without the TUI",
}

var roadmapNewCmd = &cobra.Command{
	Use:   "new <topic>",
	Short: "Generate a new roadmap",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		topic := strings.Join(args, " ")

		s, repo, collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		service, _, err := generate.FromEnv(ctx, s.EventRepo())
		if err != nil {
			return err
		}

		fmt.Printf("Generating a %d-day roadmap for %q...\n", days, topic)
		rm, err := service.GenerateRoadmap(ctx, topic, days)
		if err != nil {
			return err
		}

		collection.Add(rm)
		if err := repo.Save(ctx, collection); err != nil {
			return fmt.Errorf("save roadmaps: %w", err)
		}

		fmt.Printf("Created %q with %d days.\n", rm.Topic, len(rm.Days))
		return nil
	},
}

var roadmapListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked roadmaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		topics := collection.Topics()
		if len(topics) == 0 {
			fmt.Println("No roadmaps yet. Run: disha roadmap new <topic>")
			return nil
		}

		fmt.Printf("%-40s  %-10s  %s\n", "Topic", "Days", "Progress")
		fmt.Println(strings.Repeat("─", 64))
		for _, topic := range topics {
			rm := collection.Get(topic)
			marker := " "
			if topic == collection.Active() {
				marker = "*"
			}
			fmt.Printf("%s %-38s  %3d/%-3d     %3d%%\n",
				marker, truncate(topic, 38),
				roadmap.CompletedDays(rm), len(rm.Days),
				roadmap.ProgressRounded(rm))
		}
		return nil
	},
}

var roadmapShowCmd = &cobra.Command{
	Use:   "show [topic]",
	Short: "Show a roadmap's days and tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rm, err := pickRoadmap(collection, args)
		if err != nil {
			return err
		}

		pct := roadmap.Progress(rm)
		fmt.Printf("%s — %d%% complete\n", rm.Topic, roadmap.ProgressRounded(rm))
		fmt.Println(roadmap.MotivationalMessage(pct))
		fmt.Println()

		for _, d := range rm.Days {
			mark := " "
			if d.IsCompleted {
				mark = "x"
			}
			fmt.Printf("[%s] Day %d — %s\n", mark, d.Day, d.Summary)
			for i, t := range d.Tasks {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Printf("      %d. [%s] %s\n", i, mark, t.Text)
			}
			for i, q := range d.PracticeQuestions {
				mark := " "
				if q.Completed {
					mark = "x"
				}
				fmt.Printf("      p%d. [%s] %s\n", i, mark, q.Text)
			}
		}
		return nil
	},
}

var roadmapCheckCmd = &cobra.Command{
	Use:   "check <topic> <day> [task-index]",
	Short: "Toggle a day, task, or practice question",
	Long: "Toggle completion state. With only a day number the whole day is toggled;\n" +
		"with a task index just that task. Use --practice to address practice questions.",
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		practice, _ := cmd.Flags().GetBool("practice")

		s, repo, collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		topic := args[0]
		day, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid day %q", args[1])
		}

		switch {
		case len(args) == 2:
			err = collection.ToggleDay(topic, day)
		case practice:
			var index int
			if index, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("invalid index %q", args[2])
			}
			err = collection.TogglePractice(topic, day, index)
		default:
			var index int
			if index, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("invalid index %q", args[2])
			}
			err = collection.ToggleTask(topic, day, index)
		}
		if err != nil {
			return err
		}

		if err := repo.Save(cmd.Context(), collection); err != nil {
			return fmt.Errorf("save roadmaps: %w", err)
		}

		rm := collection.Get(topic)
		fmt.Printf("%s: %d%% complete\n", topic, roadmap.ProgressRounded(rm))
		return nil
	},
}

var roadmapRmCmd = &cobra.Command{
	Use:   "rm <topic>",
	Short: "Delete a roadmap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, repo, collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if _, err := collection.Delete(args[0]); err != nil {
			return err
		}
		if err := repo.Save(cmd.Context(), collection); err != nil {
			return fmt.Errorf("save roadmaps: %w", err)
		}

		fmt.Printf("Deleted %q.\n", args[0])
		return nil
	},
}

// openCollection opens the store and loads the roadmap collection.
func openCollection(cmd *cobra.Command) (*store.Store, *store.RoadmapRepo, *roadmap.Collection, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	repo := s.RoadmapRepo()
	collection := repo.Load(context.Background())
	return s, repo, collection, nil
}

// pickRoadmap resolves the roadmap named by args, defaulting to the
// active one.
func pickRoadmap(collection *roadmap.Collection, args []string) (*roadmap.Roadmap, error) {
	if len(args) > 0 {
		topic := strings.Join(args, " ")
		rm := collection.Get(topic)
		if rm == nil {
			return nil, fmt.Errorf("no roadmap for %q", topic)
		}
		return rm, nil
	}
	rm := collection.ActiveRoadmap()
	if rm == nil {
		return nil, fmt.Errorf("no roadmaps tracked yet")
	}
	return rm, nil
}

func init() {
	roadmapNewCmd.Flags().IntP("days", "d", 7, "Roadmap length in days (1-90)")
	roadmapCheckCmd.Flags().BoolP("practice", "p", false, "Address practice questions instead of tasks")

	roadmapCmd.AddCommand(roadmapNewCmd)
	roadmapCmd.AddCommand(roadmapListCmd)
	roadmapCmd.AddCommand(roadmapShowCmd)
	roadmapCmd.AddCommand(roadmapCheckCmd)
	roadmapCmd.AddCommand(roadmapRmCmd)
}
