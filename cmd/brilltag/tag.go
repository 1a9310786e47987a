package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nihei9/brilltag/contraction"
	"github.com/nihei9/brilltag/engine"
	"github.com/nihei9/brilltag/lexicon"
	ctxrule "github.com/nihei9/brilltag/rule/contextual"
	lexrule "github.com/nihei9/brilltag/rule/lexical"
)

var tagFlags = struct {
	lexicon         *string
	contractions    *string
	lexicalRules    *string
	contextualRules *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "tag [sentence]",
		Short:   "Tag a single sentence and print the result",
		Example: `  brilltag tag "The quick brown fox jumps"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTag,
	}
	tagFlags.lexicon = cmd.Flags().String("lexicon", "data/lexicon.txt", "lexicon file path")
	tagFlags.contractions = cmd.Flags().String("contractions", "data/contractions.json", "contraction table file path")
	tagFlags.lexicalRules = cmd.Flags().String("lexical-rules", "data/rulefile_lexical.txt", "lexical rule file path")
	tagFlags.contextualRules = cmd.Flags().String("contextual-rules", "data/rulefile_contextual.txt", "contextual rule file path")
	rootCmd.AddCommand(cmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	lex, err := lexicon.Load(*tagFlags.lexicon)
	if err != nil {
		return err
	}
	contractions, err := contraction.Load(*tagFlags.contractions)
	if err != nil {
		return err
	}
	lexRules, err := lexrule.ParseFile(*tagFlags.lexicalRules)
	if err != nil {
		return err
	}
	ctxRules, err := ctxrule.ParseFile(*tagFlags.contextualRules)
	if err != nil {
		return err
	}

	result := engine.TagSentence(args[0], lex, contractions, lexRules, ctxRules)

	parts := make([]string, len(result.Tagged))
	for i, tt := range result.Tagged {
		parts[i] = fmt.Sprintf("%s/%s", tt.Word, tt.Tag.Display())
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))

	if !result.Converged {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: contextual pass did not converge within %d sweeps\n", engine.ContextualMaxSweeps)
	}

	return nil
}
