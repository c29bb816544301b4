package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizsky/internal/quiz"
)

// newCheckCmd validates the question source without opening a window.
func newCheckCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the question CSV and print what the quiz would use",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			qs, err := quiz.LoadFile(cmd.Context(), cfg.Quiz.Questions)
			if err != nil {
				return fmt.Errorf("check %s: %w", cfg.Quiz.Questions, err)
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for i, q := range qs {
				if !q.ValidAnswer() {
					invalid++
					fmt.Fprintf(out, "question %d: answer %q is not one of A-D\n", i+1, q.Answer)
				}
			}
			used := quiz.Prepare(qs, cfg.Quiz.MaxQuestions)
			fmt.Fprintf(out, "%s: %d questions, %d with invalid answers, %d used per attempt\n",
				cfg.Quiz.Questions, len(qs), invalid, len(used))
			if invalid > 0 {
				return fmt.Errorf("check %s: %d questions cannot be answered", cfg.Quiz.Questions, invalid)
			}
			return nil
		},
	}
}
