// Package wordsearch counts words hidden in a letter grid.
//
// Words may run along any of the eight directions, backwards included.
// A cross is a 3-letter word written twice along the two diagonals of a
// shared middle cell, each diagonal forwards or backwards.
package wordsearch

import (
	"errors"
	"fmt"

	"github.com/PanoramicPanda/gridkit/grid"
	"github.com/PanoramicPanda/gridkit/ray"
)

// ErrWordLength is returned when a word cannot be searched for.
var ErrWordLength = errors.New("wordsearch: unsupported word length")

// CountWord returns how many times word occurs along straight lines in g.
// A single-letter word is counted once per matching cell.
func CountWord(g *grid.Grid[rune], word string) (int, error) {
	letters := []rune(word)
	if len(letters) == 0 {
		return 0, fmt.Errorf("%w: empty word", ErrWordLength)
	}

	count := 0
	for c, v := range g.All() {
		if v != letters[0] {
			continue
		}
		if len(letters) == 1 {
			count++
			continue
		}
		for _, d := range grid.AllDirections() {
			if spells(g, c, d.Vector(), letters[1:]) {
				count++
			}
		}
	}
	return count, nil
}

// spells reports whether the cells after origin along step read rest.
func spells(g *grid.Grid[rune], origin grid.Coordinate, step grid.Vector, rest []rune) bool {
	i := 0
	for p := range ray.Cast(g, origin, step) {
		if v, _ := g.Get(p); v != rest[i] {
			return false
		}
		i++
		if i == len(rest) {
			return true
		}
	}
	return false
}

// CountCross returns how many cells hold the middle letter of word with
// both diagonals through them spelling word. word must be 3 letters long.
func CountCross(g *grid.Grid[rune], word string) (int, error) {
	letters := []rune(word)
	if len(letters) != 3 {
		return 0, fmt.Errorf("%w: cross needs 3 letters, got %d", ErrWordLength, len(letters))
	}

	count := 0
	for c, v := range g.All() {
		if v != letters[1] {
			continue
		}
		if diagonal(g, c, grid.UpLeft, letters) && diagonal(g, c, grid.UpRight, letters) {
			count++
		}
	}
	return count, nil
}

// diagonal checks the pair of cells at c+d and c-d against the ends of
// letters in either order.
func diagonal(g *grid.Grid[rune], c grid.Coordinate, d grid.Direction, letters []rune) bool {
	a, okA := g.Get(c.Step(d))
	b, okB := g.Get(c.Step(d.Opposite()))
	if !okA || !okB {
		return false
	}
	first, last := letters[0], letters[2]
	return (a == first && b == last) || (a == last && b == first)
}
