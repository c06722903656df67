package opgrammar

// A Visitor is called for each pattern in a tree. Calling next visits the pattern's children.
type Visitor func(p Pattern, next func() error) error

// Visit p and its children, depth first.
//
// Nil children are not visited.
func Visit(p Pattern, visitor Visitor) error {
	if p == nil {
		return nil
	}
	return visitor(p, func() error {
		switch p := p.(type) {
		case OnePlus:
			return visitAll(visitor, p.Elem, p.Delim)

		case ZeroPlus:
			return visitAll(visitor, p.Elem, p.Delim)

		case Optional:
			return Visit(p.Elem, visitor)

		case Application:
			if err := Visit(p.Head, visitor); err != nil {
				return err
			}
			return visitAll(visitor, p.Args...)

		case Sequence:
			return visitAll(visitor, p...)

		case DelimitedSequence:
			if err := visitAll(visitor, p.Elems...); err != nil {
				return err
			}
			return Visit(p.Delim, visitor)

		case Alternation:
			return visitAll(visitor, p...)

		case Metavariable, Word, Literal, NamedChar, Number, Empty:

		default:
			panic("unsupported pattern")
		}
		return nil
	})
}

func visitAll(visitor Visitor, patterns ...Pattern) error {
	for _, p := range patterns {
		if err := Visit(p, visitor); err != nil {
			return err
		}
	}
	return nil
}

// Metavariables returns the distinct metavariables used by p, in order of first use.
func Metavariables(p Pattern) []Metavariable {
	seen := map[Metavariable]bool{}
	out := []Metavariable{}
	_ = Visit(p, func(p Pattern, next func() error) error {
		if mv, ok := p.(Metavariable); ok && !seen[mv] {
			seen[mv] = true
			out = append(out, mv)
		}
		return next()
	})
	return out
}
