package portable

import (
	"github.com/mre/crux/internal/diagnostic"
	"github.com/mre/crux/internal/symbolgraph"
)

// Normalizer maps raw type references from one symbol graph into the
// portable IR. It never mutates the graph.
type Normalizer struct {
	graph *symbolgraph.Graph
	diags *diagnostic.Diagnostics
}

// NewNormalizer creates a Normalizer over the given graph. Diagnostics for
// omitted type shapes are appended to diags.
func NewNormalizer(graph *symbolgraph.Graph, diags *diagnostic.Diagnostics) *Normalizer {
	return &Normalizer{graph: graph, diags: diags}
}

// Normalize maps one raw type reference to the portable IR.
//
// The second result is false when the raw form has no portable
// representation (dyn trait, function pointer, slice, array, impl trait,
// inferred, raw pointer, borrowed reference, qualified path, bare generic
// parameter, tuple). The caller omits such a field and continues; only
// genuinely broken inputs produce an error.
func (n *Normalizer) Normalize(t *symbolgraph.Type) (Type, bool, error) {
	switch t.Variant {
	case symbolgraph.TypePrimitive:
		kind, ok := SpecialFromName(t.Primitive)
		if !ok {
			return Type{}, false, &UnknownPrimitiveError{Name: t.Primitive}
		}

		return Type{Variant: VariantSpecial, Special: kind}, true, nil

	case symbolgraph.TypeResolvedPath:
		return n.normalizePath(t.Path)

	case symbolgraph.TypeTuple:
		// Elements are normalized for their side effects (an unknown
		// primitive inside a tuple is still an error), but a tuple itself
		// has no portable form.
		for i := range t.Tuple {
			if _, _, err := n.Normalize(&t.Tuple[i]); err != nil {
				return Type{}, false, err
			}
		}

		return Type{}, false, nil

	default:
		return Type{}, false, nil
	}
}

// normalizePath maps a resolved reference, recursing into angle-bracketed
// generic arguments.
func (n *Normalizer) normalizePath(path *symbolgraph.Path) (Type, bool, error) {
	name := path.LastSegment()

	args, err := angleBracketedArgs(path.Args)
	if err != nil {
		return Type{}, false, err
	}

	if len(args) == 0 {
		// Covers plain references, empty argument lists, and
		// parenthesized (function-trait style) argument lists, which are
		// treated as carrying zero arguments.
		return Type{Variant: VariantSimple, Name: name}, true, nil
	}

	normalized := make([]Type, 0, len(args))
	for _, arg := range args {
		ir, ok, err := n.Normalize(arg)
		if err != nil {
			return Type{}, false, err
		}
		if !ok {
			// One opaque argument makes the whole application opaque.
			return Type{}, false, nil
		}

		normalized = append(normalized, ir)
	}

	return Type{Variant: VariantGeneric, Name: name, Args: normalized}, true, nil
}

// angleBracketedArgs extracts the type arguments of an angle-bracketed list.
// Lifetime, const, and inferred arguments in that position are an
// unimplemented code path.
func angleBracketedArgs(args *symbolgraph.GenericArgs) ([]*symbolgraph.Type, error) {
	if args == nil || args.AngleBracketed == nil {
		return nil, nil
	}

	out := make([]*symbolgraph.Type, 0, len(args.AngleBracketed.Args))
	for i := range args.AngleBracketed.Args {
		arg := &args.AngleBracketed.Args[i]
		if arg.Kind != symbolgraph.ArgType {
			return nil, &UnimplementedGenericArgError{Kind: arg.Kind}
		}

		out = append(out, arg.Type)
	}

	return out, nil
}
