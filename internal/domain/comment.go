package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Comment is a reply attached to a post. ParentID is nil for top-level
// comments; otherwise it references another comment on the same post,
// forming a tree of unbounded depth.
type Comment struct {
	ID        uuid.UUID
	Content   string
	UserID    uuid.UUID
	PostID    uuid.UUID
	ParentID  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentWithAuthor carries a comment together with the author fields the
// thread view renders.
type CommentWithAuthor struct {
	Comment
	AuthorName   string
	AuthorAvatar *string
}

// CommentNode is one node of the rendered reply tree: the comment itself
// plus its direct replies.
type CommentNode struct {
	CommentWithAuthor
	Replies []*CommentNode
}

// BuildCommentTree turns the flat, unordered set of comments belonging to
// one post into a forest of reply trees.
//
// The set is kept as a flat arena keyed by ID plus a derived parent-id to
// children index, so no live parent/child object references exist and a
// malformed parent chain can never send the builder into a loop: nodes are
// attached only by walking down from the roots, and anything not reachable
// from a root (unknown parent, or a cycle among non-root comments) is
// silently dropped.
//
// The result is deterministic regardless of input order: siblings are
// ordered by creation time, with ID as the tiebreaker. O(n log n) overall
// from the sibling sort; grouping itself is O(n).
func BuildCommentTree(comments []CommentWithAuthor) []*CommentNode {
	if len(comments) == 0 {
		return []*CommentNode{}
	}

	byParent := make(map[uuid.UUID][]*CommentNode, len(comments))
	var roots []*CommentNode

	for _, c := range comments {
		node := &CommentNode{CommentWithAuthor: c}
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		byParent[*c.ParentID] = append(byParent[*c.ParentID], node)
	}

	sortSiblings(roots)
	for _, root := range roots {
		attachReplies(root, byParent)
	}

	return roots
}

// attachReplies walks down from node, attaching children from the index.
// Each node is visited at most once because the index maps a parent ID to
// its children and IDs are unique.
func attachReplies(node *CommentNode, byParent map[uuid.UUID][]*CommentNode) {
	children := byParent[node.ID]
	if len(children) == 0 {
		return
	}
	sortSiblings(children)
	node.Replies = children
	for _, child := range children {
		attachReplies(child, byParent)
	}
}

// sortSiblings orders comments by creation time, ID as tiebreaker.
// Insertion order, not significance.
func sortSiblings(nodes []*CommentNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if !nodes[i].CreatedAt.Equal(nodes[j].CreatedAt) {
			return nodes[i].CreatedAt.Before(nodes[j].CreatedAt)
		}
		return nodes[i].ID.String() < nodes[j].ID.String()
	})
}

// CountNodes returns the total number of comments in the forest.
func CountNodes(forest []*CommentNode) int {
	total := 0
	for _, node := range forest {
		total += 1 + CountNodes(node.Replies)
	}
	return total
}
