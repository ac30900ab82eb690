package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/transcriptus/internal/provider"
	"github.com/at-ishikawa/transcriptus/internal/translator"
)

func newWordCommand() *cobra.Command {
	output := outputText
	command := &cobra.Command{
		Use:   "word <word>",
		Short: "Look a word up with its translations, pronunciation and phrases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd.Context(), func(ctx context.Context, app *application) error {
				word, err := app.validator.Validate(args[0])
				if err != nil {
					return fmt.Errorf("validator.Validate > %w", err)
				}
				return newPrinter(cmd.OutOrStdout(), output).WordRecord(app.pipeline.Enrich(ctx, word))
			})
		},
	}
	command.Flags().VarP(&output, "output", "o", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	return command
}

func newDailyCommand() *cobra.Command {
	output := outputText
	command := &cobra.Command{
		Use:   "daily",
		Short: "Show the word of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd.Context(), func(ctx context.Context, app *application) error {
				return newPrinter(cmd.OutOrStdout(), output).DailyWord(app.selector.SelectDailyWord(ctx))
			})
		},
	}
	command.Flags().VarP(&output, "output", "o", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	return command
}

func newRandomCommand() *cobra.Command {
	output := outputText
	command := &cobra.Command{
		Use:   "random",
		Short: "Show a random word with its translated definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd.Context(), func(ctx context.Context, app *application) error {
				return newPrinter(cmd.OutOrStdout(), output).RandomWord(app.selector.RandomWord(ctx))
			})
		},
	}
	command.Flags().VarP(&output, "output", "o", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	return command
}

func newPhrasesCommand() *cobra.Command {
	output := outputText
	var exclude []string
	command := &cobra.Command{
		Use:   "phrases <word>",
		Short: "Find example phrases not shown yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd.Context(), func(ctx context.Context, app *application) error {
				word, err := app.validator.Validate(args[0])
				if err != nil {
					return fmt.Errorf("validator.Validate > %w", err)
				}
				return newPrinter(cmd.OutOrStdout(), output).MorePhrases(app.pipeline.GenerateMorePhrases(ctx, word, excludedPhrases(exclude)))
			})
		},
	}
	command.Flags().StringArrayVar(&exclude, "exclude", nil, "English sentence already shown. Can be repeated")
	command.Flags().VarP(&output, "output", "o", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	return command
}

func excludedPhrases(sentences []string) []provider.Phrase {
	phrases := make([]provider.Phrase, 0, len(sentences))
	for _, sentence := range sentences {
		if sentence = strings.TrimSpace(sentence); sentence != "" {
			phrases = append(phrases, provider.Phrase{English: sentence})
		}
	}
	return phrases
}

func newTranslateCommand() *cobra.Command {
	from := language(translator.DefaultSourceLanguage)
	to := language(translator.DefaultTargetLanguage)
	command := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd.Context(), func(ctx context.Context, app *application) error {
				translated, err := app.translator.TranslateText(ctx, "", strings.Join(args, " "), from.String(), to.String())
				if err != nil {
					return fmt.Errorf("translator.TranslateText > %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), translated)
				return err
			})
		},
	}
	command.Flags().Var(&from, "from", "Source language code")
	command.Flags().Var(&to, "to", "Target language code")
	return command
}
