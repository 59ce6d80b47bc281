package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var repeat int
	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Add a task (prompts interactively when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args, " "))
			repeatSet := cmd.Flags().Changed("repeat")
			if text == "" {
				text, repeat, repeatSet, err = promptForTask()
				if err != nil {
					return err
				}
			}
			if repeatSet && repeat < 0 {
				return fmt.Errorf("repeat interval must be zero or more days, got %d", repeat)
			}
			var repeatDays *int
			if repeatSet {
				days := repeat
				repeatDays = &days
			}

			list, err := app.LoadList()
			if err != nil {
				return err
			}
			list.Add(text, repeatDays)
			if err := app.SaveList(list); err != nil {
				return err
			}
			fmt.Println("Task added.")
			return nil
		},
	}
	cmd.Flags().IntVar(&repeat, "repeat", 0, "Repeat interval in days")
	return cmd
}

func promptForTask() (string, int, bool, error) {
	var text string
	if err := survey.AskOne(&survey.Input{Message: "Task text"}, &text, survey.WithValidator(survey.Required)); err != nil {
		return "", 0, false, err
	}
	repeats := false
	if err := survey.AskOne(&survey.Confirm{Message: "Repeat on a schedule?", Default: false}, &repeats); err != nil {
		return "", 0, false, err
	}
	if !repeats {
		return text, 0, false, nil
	}
	var daysStr string
	validDays := func(ans interface{}) error {
		value, _ := ans.(string)
		days, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || days < 0 {
			return fmt.Errorf("enter a whole number of days (0 or more)")
		}
		return nil
	}
	if err := survey.AskOne(&survey.Input{Message: "Repeat every how many days?"}, &daysStr, survey.WithValidator(validDays)); err != nil {
		return "", 0, false, err
	}
	days, _ := strconv.Atoi(strings.TrimSpace(daysStr))
	return text, days, true, nil
}
