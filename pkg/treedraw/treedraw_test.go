package treedraw_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/llrbset/pkg/llrb"
	"github.com/Sumatoshi-tech/llrbset/pkg/treedraw"
)

func TestTikz_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, treedraw.Tikz(llrb.New[int]()))
}

func TestTikz_Singleton(t *testing.T) {
	t.Parallel()

	got := treedraw.Tikz(llrb.Singleton(7))

	assert.Contains(t, got, `\usepackage{tikz}`)
	assert.Contains(t, got, `\usegdlibrary{trees}`)
	assert.Contains(t, got, `binary tree layout`)
	assert.Contains(t, got, "{7} child [missing] child [missing];")
	assert.NotContains(t, got, "[draw=red]")
}

func TestTikz_RedNodesMarked(t *testing.T) {
	t.Parallel()

	tree := llrb.New[int]()
	tree.Insert(2)
	tree.Insert(3)

	// Two elements form a black root with a red left child.
	got := treedraw.Tikz(tree)
	assert.Contains(t, got, "{3} child { node [draw=red]{2} edge from parent[red] child [missing] child [missing] } child [missing];")
}

func TestTikz_CoversAllElements(t *testing.T) {
	t.Parallel()

	tree := llrb.New[int]()
	elems := []int{14, 9, 12, 6, 2, 10, 1, 18, 16, 5}

	for _, e := range elems {
		tree.Insert(e)
	}

	require.NoError(t, tree.Validate())

	got := treedraw.Tikz(tree)
	for _, e := range elems {
		assert.Contains(t, got, "{"+strconv.Itoa(e)+"}", "element %d rendered", e)
	}
}

func TestSketch_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(empty)\n", treedraw.Sketch(llrb.New[string]()))
}

func TestSketch_Shape(t *testing.T) {
	t.Parallel()

	tree := llrb.New[int]()
	tree.Insert(2)
	tree.Insert(1)
	tree.Insert(3)

	got := treedraw.Sketch(tree)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)

	// Right child first, then root, then left child.
	assert.Contains(t, lines[0], "3")
	assert.True(t, strings.HasPrefix(lines[0], "    "))
	assert.Contains(t, lines[1], "2")
	assert.False(t, strings.HasPrefix(lines[1], " "))
	assert.Contains(t, lines[2], "1")
	assert.True(t, strings.HasPrefix(lines[2], "    "))
}
