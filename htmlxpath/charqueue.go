package htmlxpath

// CharQueue is an ordered sequence of Unicode scalars with O(1) peek and
// front-pop (C1). It backs a ParseCursor, which is the view the combinator
// kernel actually operates on.
type CharQueue struct {
	runes []rune
	head  int
}

// NewCharQueue builds a queue over every rune of input, in order.
func NewCharQueue(input string) *CharQueue {
	return &CharQueue{runes: []rune(input)}
}

func (q *CharQueue) IsEmpty() bool { return q.head >= len(q.runes) }

func (q *CharQueue) Len() int { return len(q.runes) - q.head }

func (q *CharQueue) Peek() (rune, bool) {
	if q.IsEmpty() {
		return 0, false
	}
	return q.runes[q.head], true
}

func (q *CharQueue) Dequeue() (rune, bool) {
	c, ok := q.Peek()
	if ok {
		q.head++
	}
	return c, ok
}

// drain removes the first n runes, compacting the backing slice.
func (q *CharQueue) drain(n int) {
	q.head += n
	if q.head > len(q.runes)/2 && q.head > 64 {
		q.runes = append([]rune(nil), q.runes[q.head:]...)
		q.head = 0
	}
}

// ParseCursor wraps a non-owning view over a CharQueue with a read position
// and a savepoint stack, as described in spec §4.1. It is the only type the
// combinator kernel (C2) touches.
type ParseCursor struct {
	queue    *CharQueue
	position int
	saves    []int
}

func NewParseCursor(q *CharQueue) *ParseCursor {
	return &ParseCursor{queue: q}
}

func (c *ParseCursor) Len() int { return c.queue.Len() - c.position }

func (c *ParseCursor) Peek() (rune, bool) {
	idx := c.position
	if idx >= c.queue.Len() {
		return 0, false
	}
	return c.queue.runes[c.queue.head+idx], true
}

// Advance returns the scalar at the current position and moves past it.
func (c *ParseCursor) Advance() (rune, bool) {
	ch, ok := c.Peek()
	if ok {
		c.position++
	}
	return ch, ok
}

// ConsumeWhile accumulates matching scalars into a string, leaving the
// cursor positioned at the first scalar that fails pred (or at EOF).
func (c *ParseCursor) ConsumeWhile(pred func(rune) bool) string {
	var out []rune
	for {
		ch, ok := c.Peek()
		if !ok || !pred(ch) {
			break
		}
		out = append(out, ch)
		c.position++
	}
	return string(out)
}

// ConsumeTill accumulates scalars until pred holds (or EOF).
func (c *ParseCursor) ConsumeTill(pred func(rune) bool) string {
	return c.ConsumeWhile(func(r rune) bool { return !pred(r) })
}

// Save pushes the current position onto the savepoint stack.
func (c *ParseCursor) Save() { c.saves = append(c.saves, c.position) }

// Commit drops the top savepoint without reverting.
func (c *ParseCursor) Commit() {
	if n := len(c.saves); n > 0 {
		c.saves = c.saves[:n-1]
	}
}

// Revert pops the top savepoint and resets the position to it. On an empty
// save stack it resets to 0 rather than panicking (spec §4.1 contract).
func (c *ParseCursor) Revert() {
	if n := len(c.saves); n > 0 {
		c.position = c.saves[n-1]
		c.saves = c.saves[:n-1]
		return
	}
	c.position = 0
}

// Flush drains every scalar up to the current position from the underlying
// queue and clears the save stack. Only called at step boundaries where no
// outstanding savepoint is meaningful.
func (c *ParseCursor) Flush() {
	c.queue.drain(c.position)
	c.position = 0
	c.saves = c.saves[:0]
}
