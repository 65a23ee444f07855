package extract

import (
	"github.com/mre/crux/internal/symbolgraph"
)

// RenderingContext converts finished items into final display items and
// exposes the id-to-items multiplicity map.
type RenderingContext struct {
	idToItems map[symbolgraph.ID][]*IntermediatePublicItem
}

// NewRenderingContext builds the multimap from every terminal item Id to
// every finished item ending there. One Id maps to many entries when an API
// re-exports the same definition in several places. Multiplicity is
// deliberately never collapsed.
func NewRenderingContext(output []IntermediatePublicItem) *RenderingContext {
	ctx := &RenderingContext{
		idToItems: make(map[symbolgraph.ID][]*IntermediatePublicItem),
	}

	for i := range output {
		item := &output[i]
		id := item.Item().ID
		ctx.idToItems[id] = append(ctx.idToItems[id], item)
	}

	return ctx
}

// ItemsWithID returns every finished item whose target is id.
func (c *RenderingContext) ItemsWithID(id symbolgraph.ID) []*IntermediatePublicItem {
	return c.idToItems[id]
}

// IDToItems exposes the full multiplicity map.
func (c *RenderingContext) IDToItems() map[symbolgraph.ID][]*IntermediatePublicItem {
	return c.idToItems
}

// Render produces the final display form: the visible path from non-hidden
// components, and the sortable path over all components.
func (c *RenderingContext) Render(item *IntermediatePublicItem) PublicItem {
	var visible []string
	for _, comp := range item.Path() {
		if comp.Hide {
			continue
		}

		visible = append(visible, renderSegment(comp))
	}

	return PublicItem{
		path:    visible,
		kind:    item.Item().Kind,
		id:      item.Item().ID,
		sortKey: item.SortableKey(),
	}
}

// renderSegment picks the display name for one visible path step. An impl
// step has no name of its own; its members should read as members of the
// implementing type, so the step renders as the type the impl is for. All
// other steps render their item name.
func renderSegment(comp PathComponent) string {
	if comp.Item.Item.Kind == symbolgraph.KindImpl && comp.Type != nil {
		if name := implTargetName(comp.Type); name != "" {
			return name
		}
	}

	return comp.Item.RenderedName()
}

// implTargetName names an impl target type when it has a nameable form.
func implTargetName(t *symbolgraph.Type) string {
	switch t.Variant {
	case symbolgraph.TypeResolvedPath:
		return t.Path.LastSegment()
	case symbolgraph.TypePrimitive:
		return t.Primitive
	case symbolgraph.TypeGeneric:
		return t.Generic
	default:
		return ""
	}
}
