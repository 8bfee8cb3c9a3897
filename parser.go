/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * The structural parser (spec.md §4.4) — the hard core of this system.
 *
 * State is a single context pointer that walks up and down the tree
 * under construction as tokens are consumed; the algorithm is
 * tail-iterative across tokens and never backtracks into earlier
 * output (spec.md §9, "Parser state").
 */

package fixtree

import "github.com/fixorch/fixtree/schema"

const msgTypeTag = 35

// Parse tokenizes data and structurally parses it against repo,
// returning the resulting Message tree (spec.md §6, Message.parse).
// Parse never fails under the relaxed rules of spec.md §4: unknown
// tags and unknown msgTypes are accepted, not rejected. It returns nil
// if no MsgType (tag 35) field is found anywhere in data (spec.md §7,
// "No MsgType in input").
func Parse(data []byte, repo *schema.Repository) *Message {
	return parseTokens(tokenize(data), repo)
}

func parseTokens(tokens []token, repo *schema.Repository) *Message {
	var msg *Message
	var ctx context
	var preHeader []node

	i := 0
	for ; i < len(tokens); i++ {
		t := tokens[i]
		if t.tag == msgTypeTag {
			msg = newMessage(t.value, repo)
			ctx = msg
			for _, n := range preHeader {
				msg.AddChild(n)
			}
			msg.AddChild(makeField(t, repo))
			i++
			break
		}
		preHeader = append(preHeader, makeField(t, repo))
	}

	if msg == nil {
		// No MsgType anywhere in the stream: spec.md §7 says Parse
		// returns an absent Message.
		return nil
	}

	for ; i < len(tokens); i++ {
		ctx = step(ctx, makeField(tokens[i], repo), repo)
	}

	return msg
}

func newMessage(msgType string, repo *schema.Repository) *Message {
	return &Message{
		MsgType: msgType,
		Spec:    repo.MessageSpecByType(msgType),
		repo:    repo,
	}
}

func makeField(t token, repo *schema.Repository) *Field {
	return &Field{Tag: t.tag, Value: t.value, Spec: repo.FieldSpecByID(t.tag)}
}

// step applies the five-clause decision procedure to one field and
// returns the new context. Clauses are evaluated in order; earlier
// clauses win (spec.md §4.4).
func step(ctx context, field *Field, repo *schema.Repository) context {
	// Clause 1: unknown tag.
	if field.Spec == nil {
		ctx.AddChild(field)
		return ctx
	}

	// Clause 2: num-in-group field opens a new list. If the schema marks
	// the field as NumInGroup but no GroupSpec resolves it (spec.md §7,
	// "schema internal inconsistency"), fall through to clause 4/5
	// instead.
	if group := field.Spec.Group(); field.Spec.IsNumInGroup(repo) && group != nil {
		for !ctx.ContainsField(repo, field.Tag) {
			ctx = ctx.Parent() // the Message root always accepts, so this terminates
		}

		ctx.AddChild(field)
		list := &GroupList{Spec: group, parent: ctx}
		ctx.AddChild(list)
		return list
	}

	// Clause 3: group-begin field.
	if field.Tag == ctx.BeginFieldID() {
		switch c := ctx.(type) {
		case *GroupList:
			g := &Group{Spec: c.Spec, parent: c}
			c.AddChild(g)
			g.AddChild(field)
			return g
		case *Group:
			list := c.parent
			g := &Group{Spec: list.Spec, parent: list}
			list.AddChild(g)
			g.AddChild(field)
			return g
		}
	}

	// Clause 4: context miss — pop to the parent and apply the procedure
	// again from clause 1 there; the Message root always accepts.
	if !ctx.ContainsField(repo, field.Tag) {
		return step(ctx.Parent(), field, repo)
	}

	// Clause 5: normal append.
	ctx.AddChild(field)
	return ctx
}
