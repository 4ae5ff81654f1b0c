package cmd

import (
	"fmt"
	"strings"

	"github.com/arhaan/disha/internal/roadmap"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress across all roadmaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, collection, err := openCollection(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		topics := collection.Topics()
		if len(topics) == 0 {
			fmt.Println("Nothing tracked yet. Run: disha roadmap new <topic>")
			return nil
		}

		fmt.Printf("%-40s  %10s  %10s  %s\n", "Topic", "Days", "Tasks", "Progress")
		fmt.Println(strings.Repeat("─", 76))

		totalDone, totalDays := 0, 0
		for _, topic := range topics {
			rm := collection.Get(topic)

			tasksDone, tasks := 0, 0
			for _, d := range rm.Days {
				for _, t := range d.Tasks {
					tasks++
					if t.Completed {
						tasksDone++
					}
				}
			}

			done := roadmap.CompletedDays(rm)
			totalDone += done
			totalDays += len(rm.Days)

			fmt.Printf("%-40s  %4d/%-5d  %4d/%-5d  %3d%%\n",
				truncate(topic, 40), done, len(rm.Days), tasksDone, tasks,
				roadmap.ProgressRounded(rm))
		}

		fmt.Println(strings.Repeat("─", 76))
		overall := 0.0
		if totalDays > 0 {
			overall = float64(totalDone) / float64(totalDays) * 100
		}
		fmt.Printf("%-40s  %4d/%-5d  %10s  %3.0f%%\n", "TOTAL", totalDone, totalDays, "", overall)
		fmt.Println()
		fmt.Println(roadmap.MotivationalMessage(overall))
		return nil
	},
}
