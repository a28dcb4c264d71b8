// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package astutil

import (
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/onetimevar/internal/syntax"
)

// onetimevar is the name of the linter.
const onetimevar = "onetimevar"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	tree      *syntax.Tree
	comments  []*syntax.Node // sorted by start offset
	leading   int            // number of comments before the first statement
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [syntax.Tree].
func NewCurrentFile(tree *syntax.Tree) CurrentFile {
	if tree == nil || tree.Root == nil {
		return CurrentFile{}
	}

	c := CurrentFile{tree: tree}

	leading := true
	for n := range tree.Root.Preorder() {
		if n == tree.Root {
			continue
		}

		if n.Kind != syntax.KindComment {
			if n.Parent == tree.Root {
				leading = false
			}

			continue
		}

		c.comments = append(c.comments, n)

		if leading {
			c.leading++

			if isGenerated(tree.Text(n)) {
				c.generated = true
			}
		}
	}

	return c
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid tree.
func (c CurrentFile) Valid() bool {
	return c.tree != nil
}

// Tree returns the syntax tree of the file.
func (c CurrentFile) Tree() *syntax.Tree {
	return c.tree
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLintComment checks if the line of offset is followed by a //nolint:onetimevar comment.
func (c CurrentFile) NoLintComment(offset int) bool {
	// find the first comment starting after the declaration
	i, _ := slices.BinarySearchFunc(c.comments, offset,
		func(n *syntax.Node, o int) int { return n.Start - o })
	if i >= len(c.comments) {
		return false
	}

	comment := c.comments[i]

	if c.tree.Line(comment.Start) != c.tree.Line(offset) {
		return false // not on this line
	}

	return CommentHasNoLint(c.tree.Text(comment))
}

// NoLintFile checks whether a leading comment of the file disables the linter.
func (c CurrentFile) NoLintFile() bool {
	for _, comment := range c.comments[:c.leading] {
		if CommentHasNoLint(c.tree.Text(comment)) {
			return true
		}
	}

	return false
}

var (
	nolintPattern    = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)
	generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)
)

// CommentHasNoLint checks if the provided comment contains a `//nolint:onetimevar` directive.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == onetimevar || l == "all" {
			return true
		}
	}

	return false
}

func isGenerated(comment string) bool {
	if strings.Contains(comment, "@generated") {
		return true
	}

	for line := range strings.Lines(comment) {
		if generatedPattern.MatchString(strings.TrimRight(line, "\r\n")) {
			return true
		}
	}

	return false
}
