/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tuple

import (
	"fmt"

	"github.com/m1gwings/treedrawer/tree"
)

// tupleLabel labels every tuple node in a drawing.
const tupleLabel = "()"

// Draw renders the nested structure of t as a multi-line tree. Tuple nodes
// are labelled "()" and leaves with their display form, children in element
// order. It is meant for debugging deeply nested values where String is
// hard to read.
func (t Tuple) Draw() string {
	root := tree.NewTree(tree.NodeString(tupleLabel))
	t.drawChildren(root)
	return root.String()
}

func (t Tuple) drawChildren(parent *tree.Tree) {
	for _, e := range t.elems {
		if e.kind == KindTuple {
			e.tuple.drawChildren(parent.AddChild(tree.NodeString(tupleLabel)))
			continue
		}
		parent.AddChild(tree.NodeString(fmt.Sprint(e.value)))
	}
}
