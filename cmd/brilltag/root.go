package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brilltag",
	Short: "Tag a sentence with Penn-Treebank-style parts of speech",
	Long: `brilltag assigns each word in a sentence a part-of-speech tag using
a transformation-based tagger: a lexicon lookup, a bounded pass of lexical
rules for orthographic guessing, and a bounded contextual-rule fixpoint
pass.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
