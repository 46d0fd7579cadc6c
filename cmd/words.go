package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PanoramicPanda/gridkit/grid"
	"github.com/PanoramicPanda/gridkit/wordsearch"
)

var wordsCmd = newWordsCmd()

func newWordsCmd() *cobra.Command {
	var word string
	cmd := newPuzzleCmd(puzzle{
		use:   "words",
		short: "Count a word and its diagonal cross in a letter grid",
		day:   4,
		title: "Ceres Search",
		solve: func(r run) ([]answer, error) {
			return solveWords(r, word)
		},
	})
	cmd.Flags().StringVarP(&word, "word", "w", "XMAS", "word to search for; the cross uses its last three letters")

	return cmd
}

func solveWords(r run, word string) ([]answer, error) {
	g, err := grid.Parse(r.lines)
	if err != nil {
		return nil, err
	}
	words, err := wordsearch.CountWord(g, word)
	if err != nil {
		return nil, err
	}
	letters := []rune(word)
	if len(letters) < 3 {
		return []answer{{"words", words}}, nil
	}
	crosses, err := wordsearch.CountCross(g, string(letters[len(letters)-3:]))
	if err != nil {
		return nil, err
	}
	return []answer{
		{"words", words},
		{"crosses", crosses},
	}, nil
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}
