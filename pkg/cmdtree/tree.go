package cmdtree

import (
	"sort"
	"strings"
)

// NodeKind distinguishes the three kinds of namespace node.
type NodeKind int

const (
	BranchKind NodeKind = iota
	CommandKind
	AliasKind
)

func (k NodeKind) String() string {
	switch k {
	case BranchKind:
		return "branch"
	case CommandKind:
		return "command"
	case AliasKind:
		return "alias"
	default:
		return "unknown"
	}
}

// CollisionPolicy decides what happens when a leaf is attached under a name
// that is already taken in the same branch.
type CollisionPolicy int

const (
	// RejectCollisions fails the registration with a ConfigurationError.
	RejectCollisions CollisionPolicy = iota
	// ReplaceLeaves lets a new leaf replace an existing leaf. A leaf never
	// replaces a branch.
	ReplaceLeaves
)

// AliasPolicy decides how the walker treats alias nodes.
type AliasPolicy int

const (
	// AliasResolve follows an alias to its target path and keeps walking there.
	AliasResolve AliasPolicy = iota
	// AliasIgnore treats alias nodes as if they were absent.
	AliasIgnore
)

// maxAliasHops bounds alias chains so a cycle cannot hang the walker.
const maxAliasHops = 8

// TreeOptions configures a Tree. The zero value rejects collisions and
// resolves aliases.
type TreeOptions struct {
	Collisions CollisionPolicy
	Aliases    AliasPolicy
}

type nodeID int

const (
	rootID   nodeID = 0
	noParent nodeID = -1
)

type node struct {
	kind     NodeKind
	name     string
	parent   nodeID
	children map[string]nodeID
	command  *Command
	target   string
}

// Tree owns every node of a namespace. Nodes refer to their parent by arena
// index, so handles stay small and comparable.
//
// A Tree is not safe for concurrent mutation. Once construction is finished
// it may be read from any number of goroutines.
type Tree struct {
	opts  TreeOptions
	nodes []node
}

// NewTree creates a tree holding only the unnamed root branch.
func NewTree(opts TreeOptions) *Tree {
	return &Tree{
		opts: opts,
		nodes: []node{{
			kind:     BranchKind,
			parent:   noParent,
			children: map[string]nodeID{},
		}},
	}
}

// Options returns the policies the tree was created with.
func (t *Tree) Options() TreeOptions {
	return t.opts
}

// Root returns the root branch.
func (t *Tree) Root() Branch {
	return Branch{Node{tree: t, id: rootID}}
}

// Walk descends from the root. See Branch.Walk.
func (t *Tree) Walk(tokens []string) WalkResult {
	return t.Root().Walk(tokens)
}

func (t *Tree) handle(id nodeID) Node {
	return Node{tree: t, id: id}
}

// Node is a handle to any node of a Tree. Two handles are equal when they
// refer to the same node.
type Node struct {
	tree *Tree
	id   nodeID
}

func (n Node) raw() *node {
	return &n.tree.nodes[n.id]
}

// Name returns the node's name. The root's name is empty.
func (n Node) Name() string {
	return n.raw().name
}

// Kind reports whether the node is a branch, command or alias.
func (n Node) Kind() NodeKind {
	return n.raw().kind
}

// IsRoot reports whether n is the root branch.
func (n Node) IsRoot() bool {
	return n.tree != nil && n.id == rootID
}

// Parent returns the branch owning n. The root has no parent.
func (n Node) Parent() (Branch, bool) {
	p := n.raw().parent
	if p == noParent {
		return Branch{}, false
	}
	return Branch{n.tree.handle(p)}, true
}

// Path returns the names from the root down to n, root excluded.
func (n Node) Path() []string {
	var path []string
	for id := n.id; id != rootID && id != noParent; id = n.tree.nodes[id].parent {
		path = append(path, n.tree.nodes[id].name)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// String returns the space separated path of n.
func (n Node) String() string {
	return strings.Join(n.Path(), " ")
}

func (n Node) AsBranch() (Branch, bool) {
	if n.tree == nil || n.Kind() != BranchKind {
		return Branch{}, false
	}
	return Branch{n}, true
}

func (n Node) AsCommand() (CommandNode, bool) {
	if n.tree == nil || n.Kind() != CommandKind {
		return CommandNode{}, false
	}
	return CommandNode{n}, true
}

func (n Node) AsAlias() (AliasNode, bool) {
	if n.tree == nil || n.Kind() != AliasKind {
		return AliasNode{}, false
	}
	return AliasNode{n}, true
}

// Branch is an interior node owning named children.
type Branch struct {
	Node
}

// Branch returns the child branch called name, creating and attaching it
// when absent. Repeated calls return the same branch. A leaf already holding
// the name is a ConfigurationError.
func (b Branch) Branch(name string) (Branch, error) {
	if err := validateName(name); err != nil {
		return Branch{}, err
	}
	if id, ok := b.raw().children[name]; ok {
		child := b.tree.handle(id)
		if br, ok := child.AsBranch(); ok {
			return br, nil
		}
		return Branch{}, configErrorf(joinPath(b.Path(), name), "a %s already exists at this path", child.Kind())
	}
	id := b.attach(node{
		kind:     BranchKind,
		name:     name,
		children: map[string]nodeID{},
	})
	return Branch{b.tree.handle(id)}, nil
}

// AddCommand attaches cmd as a leaf called name.
func (b Branch) AddCommand(name string, cmd *Command) (CommandNode, error) {
	if cmd == nil {
		return CommandNode{}, configErrorf(joinPath(b.Path(), name), "command is nil")
	}
	id, err := b.addLeaf(node{kind: CommandKind, name: name, command: cmd})
	if err != nil {
		return CommandNode{}, err
	}
	return CommandNode{b.tree.handle(id)}, nil
}

// AddAlias attaches an alias leaf called name that redirects to target, a
// space separated path from the root.
func (b Branch) AddAlias(name, target string) (AliasNode, error) {
	target = strings.Join(strings.Fields(target), " ")
	if target == "" {
		return AliasNode{}, configErrorf(joinPath(b.Path(), name), "alias target is empty")
	}
	id, err := b.addLeaf(node{kind: AliasKind, name: name, target: target})
	if err != nil {
		return AliasNode{}, err
	}
	return AliasNode{b.tree.handle(id)}, nil
}

func (b Branch) addLeaf(leaf node) (nodeID, error) {
	if err := validateName(leaf.name); err != nil {
		return 0, err
	}
	existing, taken := b.raw().children[leaf.name]
	if !taken {
		return b.attach(leaf), nil
	}

	path := joinPath(b.Path(), leaf.name)
	prev := b.tree.nodes[existing]
	switch {
	case prev.kind == BranchKind:
		return 0, configErrorf(path, "a branch already exists at this path")
	case b.tree.opts.Collisions != ReplaceLeaves:
		return 0, configErrorf(path, "a %s is already registered at this path", prev.kind)
	}

	leaf.parent = b.id
	b.tree.nodes[existing] = leaf
	return existing, nil
}

func (b Branch) attach(child node) nodeID {
	child.parent = b.id
	id := nodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, child)
	// b.raw() must be taken after the append, which may move the arena.
	b.raw().children[child.name] = id
	return id
}

// Child returns the direct child called name, aliases included and unresolved.
func (b Branch) Child(name string) (Node, bool) {
	id, ok := b.raw().children[name]
	if !ok {
		return Node{}, false
	}
	return b.tree.handle(id), true
}

// Children returns the direct children sorted by name.
func (b Branch) Children() []Node {
	children := b.raw().children
	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]Node, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, b.tree.handle(children[name]))
	}
	return nodes
}

// ChildNames returns the sorted names of the direct children. Aliases are
// included only when withAliases is set.
func (b Branch) ChildNames(withAliases bool) []string {
	var names []string
	for _, child := range b.Children() {
		if child.Kind() == AliasKind && !withAliases {
			continue
		}
		names = append(names, child.Name())
	}
	return names
}

// CommandNode is a leaf owning a Command.
type CommandNode struct {
	Node
}

func (c CommandNode) Command() *Command {
	return c.raw().command
}

// AliasNode is a leaf redirecting to another path.
type AliasNode struct {
	Node
}

// Target returns the space separated path the alias redirects to.
func (a AliasNode) Target() string {
	return a.raw().target
}

func validateName(name string) error {
	if name == "" {
		return configErrorf(name, "node name is empty")
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return configErrorf(name, "node name contains whitespace")
	}
	return nil
}

func joinPath(parent []string, name string) string {
	return strings.Join(append(append([]string(nil), parent...), name), " ")
}
