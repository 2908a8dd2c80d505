package cmdtree

import "strings"

// WalkResult describes how far a token sequence reached into a tree.
type WalkResult struct {
	branches []Branch
	leftover []string
	command  CommandNode
	found    bool
	deepest  Branch
}

// Branches returns the branches descended into, in order. The starting
// branch is not included.
func (r WalkResult) Branches() []Branch {
	return r.branches
}

// Leftover returns the tokens the walk did not consume. When a command was
// reached these are its raw arguments; otherwise they start with the token
// that matched no child.
func (r WalkResult) Leftover() []string {
	return r.leftover
}

// Command returns the command the walk stopped at, if any.
func (r WalkResult) Command() (CommandNode, bool) {
	return r.command, r.found
}

// Deepest returns the last branch reached, or the starting branch when the
// walk did not descend at all.
func (r WalkResult) Deepest() Branch {
	return r.deepest
}

// Walk descends from b matching one token per level by exact name. It stops
// at the first command, leaving the remaining tokens as its arguments, or at
// the first token that matches no child.
func (b Branch) Walk(tokens []string) WalkResult {
	result := WalkResult{
		branches: []Branch{},
		deepest:  b,
	}

	current := b
	for i, token := range tokens {
		child, ok := current.lookup(token)
		if !ok {
			result.leftover = append([]string{}, tokens[i:]...)
			return result
		}
		if cmd, ok := child.AsCommand(); ok {
			result.command = cmd
			result.found = true
			result.leftover = append([]string{}, tokens[i+1:]...)
			return result
		}
		next, _ := child.AsBranch()
		result.branches = append(result.branches, next)
		result.deepest = next
		current = next
	}

	result.leftover = []string{}
	return result
}

// lookup finds the child matching token, following aliases according to the
// tree's alias policy. It only ever yields branches and commands.
func (b Branch) lookup(token string) (Node, bool) {
	child, ok := b.Child(token)
	if !ok {
		return Node{}, false
	}
	if child.Kind() != AliasKind {
		return child, true
	}
	if b.tree.opts.Aliases == AliasIgnore {
		return Node{}, false
	}
	return b.tree.resolveAlias(child, maxAliasHops)
}

// resolveAlias follows alias to the node its target path names. Dangling
// targets, targets passing through a command, and chains longer than hops
// resolve to nothing.
func (t *Tree) resolveAlias(alias Node, hops int) (Node, bool) {
	if hops <= 0 {
		return Node{}, false
	}

	target := strings.Fields(alias.raw().target)
	current := t.Root()
	for i, name := range target {
		child, ok := current.Child(name)
		if !ok {
			return Node{}, false
		}
		if child.Kind() == AliasKind {
			child, ok = t.resolveAlias(child, hops-1)
			if !ok {
				return Node{}, false
			}
		}
		if child.Kind() == CommandKind {
			if i != len(target)-1 {
				return Node{}, false
			}
			return child, true
		}
		current, _ = child.AsBranch()
	}
	return current.Node, true
}

// Resolve returns the node the alias currently redirects to, ignoring the
// tree's alias policy.
func (a AliasNode) Resolve() (Node, bool) {
	return a.tree.resolveAlias(a.Node, maxAliasHops)
}
