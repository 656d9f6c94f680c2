// Package cursor implements a random-access view over a token vector
// with mark/rollback save points (spec §4.2's "Token cursor" component).
package cursor

import "github.com/ark1409/shiftc/internal/lexer/token"

// Cursor walks a fixed token slice. Out-of-range Peek/Current returns
// the Null sentinel token (kind NullToken) rather than panicking;
// callers check IsNull rather than comparing against a length.
type Cursor struct {
	toks  []token.Token
	pos   int
	marks []int
}

// New wraps toks for random access starting at index 0.
func New(toks []token.Token) *Cursor {
	return &Cursor{toks: toks}
}

// Current returns the token at the cursor's position without advancing.
func (c *Cursor) Current() token.Token { return c.At(c.pos) }

// At returns the token at absolute index i, or Null if out of range.
func (c *Cursor) At(i int) token.Token {
	if i < 0 || i >= len(c.toks) {
		return token.Null
	}
	return c.toks[i]
}

// Peek returns the token n positions ahead of the cursor (default 1)
// without advancing.
func (c *Cursor) Peek(n int) token.Token {
	if n == 0 {
		n = 1
	}
	return c.At(c.pos + n)
}

// Next advances the cursor by n (default 1) and returns the token now
// under it.
func (c *Cursor) Next(n int) token.Token {
	if n == 0 {
		n = 1
	}
	c.pos += n
	return c.Current()
}

// Reverse moves the cursor back by n (default 1) and returns the token
// now under it.
func (c *Cursor) Reverse(n int) token.Token {
	if n == 0 {
		n = 1
	}
	c.pos -= n
	if c.pos < 0 {
		c.pos = 0
	}
	return c.Current()
}

// ReversePeek returns the token n positions behind the cursor without
// moving it.
func (c *Cursor) ReversePeek(n int) token.Token {
	if n == 0 {
		n = 1
	}
	return c.At(c.pos - n)
}

// Pos returns the cursor's absolute token index.
func (c *Cursor) Pos() int { return c.pos }

// Seek moves the cursor to an absolute index.
func (c *Cursor) Seek(i int) { c.pos = i }

// Len returns the number of tokens in the underlying vector.
func (c *Cursor) Len() int { return len(c.toks) }

// Mark pushes the current position as a save point and returns its index.
func (c *Cursor) Mark() int {
	c.marks = append(c.marks, c.pos)
	return len(c.marks) - 1
}

// Rollback restores the position recorded by Mark and discards the save
// point (and any nested ones pushed after it).
func (c *Cursor) Rollback(mark int) {
	if mark < 0 || mark >= len(c.marks) {
		return
	}
	c.pos = c.marks[mark]
	c.marks = c.marks[:mark]
}

// PopMark discards the most recently pushed save point without moving
// the cursor.
func (c *Cursor) PopMark() {
	if len(c.marks) == 0 {
		return
	}
	c.marks = c.marks[:len(c.marks)-1]
}
