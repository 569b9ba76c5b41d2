// Package treedraw renders llrb trees for visual inspection. It is a
// pure read-only diagnostic built entirely on the core's traversal
// interface (Tree.Root / Tree.At) and has no effect on tree state.
//
// Tikz emits a LaTeX/TikZ drawing of the tree structure; Sketch emits
// an indented ASCII outline with red nodes colored on capable
// terminals.
package treedraw

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Sumatoshi-tech/llrbset/pkg/llrb"
)

// tikzPreamble lists the LaTeX packages the emitted picture needs.
const tikzPreamble = `%% Put these in your preamble
\usepackage{tikz}
\usetikzlibrary{graphdrawing}
\usegdlibrary{trees}
\definecolor{red}{RGB}{171,50,37}

%% Put these in the document body
`

// Tikz renders the tree as a TikZ picture using the binary tree graph
// layout. Red nodes are drawn with red borders and red parent edges.
// The result is empty for an empty tree.
func Tikz[T cmp.Ordered](t *llrb.Tree[T]) string {
	root := t.Root()
	if root.Nil() {
		return ""
	}

	var b strings.Builder

	b.WriteString(tikzPreamble)
	b.WriteString(`\tikz [binary tree layout, nodes={draw,circle}, font=\sffamily, semithick] \node`)

	view := t.At(root)
	fmt.Fprintf(&b, "{%v} child ", view.Elem)
	tikzNode(&b, t, view.Left)
	b.WriteString(" child ")
	tikzNode(&b, t, view.Right)
	b.WriteString(";\n")

	return b.String()
}

// tikzNode writes one subtree in the `node ... child ... child ...`
// grammar, or the [missing] placeholder for an absent child.
func tikzNode[T cmp.Ordered](b *strings.Builder, t *llrb.Tree[T], h llrb.Handle) {
	if h.Nil() {
		b.WriteString("[missing]")

		return
	}

	view := t.At(h)

	b.WriteString("{ node ")

	if view.Red {
		b.WriteString("[draw=red]")
	}

	fmt.Fprintf(b, "{%v} ", view.Elem)

	if view.Red {
		b.WriteString("edge from parent[red]")
	}

	b.WriteString(" child ")
	tikzNode(b, t, view.Left)
	b.WriteString(" child ")
	tikzNode(b, t, view.Right)
	b.WriteString(" }")
}

// Sketch renders the tree as an indented outline, right subtree first
// so the picture reads left-to-right as top-to-bottom. Red nodes are
// colored red when the output supports it.
func Sketch[T cmp.Ordered](t *llrb.Tree[T]) string {
	root := t.Root()
	if root.Nil() {
		return "(empty)\n"
	}

	var b strings.Builder

	sketchNode(&b, t, root, 0)

	return b.String()
}

func sketchNode[T cmp.Ordered](b *strings.Builder, t *llrb.Tree[T], h llrb.Handle, depth int) {
	if h.Nil() {
		return
	}

	view := t.At(h)

	sketchNode(b, t, view.Right, depth+1)

	label := fmt.Sprint(view.Elem)
	if view.Red {
		label = color.New(color.FgRed).Sprint(label)
	}

	b.WriteString(strings.Repeat("    ", depth))
	b.WriteString(label)
	b.WriteByte('\n')

	sketchNode(b, t, view.Left, depth+1)
}
