package ast

// Modifiers is a bit set of the declaration modifier keywords (spec
// §4.3.1): visibility (public/protected/private), static, const, the
// extern/ext linkage pair, and the inert binary/explicit/unsafe
// modifiers the front end records but never interprets (SPEC_FULL.md §4
// "supplemented features").
type Modifiers uint16

const (
	ModPublic Modifiers = 1 << iota
	ModProtected
	ModPrivate
	ModStatic
	ModConst
	ModExtern
	ModExt
	ModBinary
	ModExplicit
	ModUnsafe
)

// Has reports whether m carries every bit set in flag.
func (m Modifiers) Has(flag Modifiers) bool { return m&flag == flag }

// Any reports whether m carries at least one of flag's bits.
func (m Modifiers) Any(flag Modifiers) bool { return m&flag != 0 }

// VisibilityCount returns how many of public/protected/private are set,
// used to flag a declaration with more than one visibility modifier.
func (m Modifiers) VisibilityCount() int {
	n := 0
	if m.Has(ModPublic) {
		n++
	}
	if m.Has(ModProtected) {
		n++
	}
	if m.Has(ModPrivate) {
		n++
	}
	return n
}

// modifierText maps a lowercase modifier keyword to its bit, used by the
// parser while accumulating a declaration's modifier list.
var modifierText = map[string]Modifiers{
	"public":    ModPublic,
	"protected": ModProtected,
	"private":   ModPrivate,
	"static":    ModStatic,
	"const":     ModConst,
	"extern":    ModExtern,
	"ext":       ModExt,
	"binary":    ModBinary,
	"explicit":  ModExplicit,
	"unsafe":    ModUnsafe,
}

// ModifierFromText returns the bit for a modifier keyword's text and
// whether it was recognized.
func ModifierFromText(text string) (Modifiers, bool) {
	m, ok := modifierText[text]
	return m, ok
}
