package symbolgraph

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Crate is the deserialized form of one symbol graph document.
type Crate struct {
	// Root is the Id of the root module.
	Root ID `json:"root"`
	// CrateVersion is the library version, when recorded.
	CrateVersion *string `json:"crate_version"`
	// Index maps every present Id to its item.
	Index map[ID]*Item `json:"index"`
	// Paths maps Ids to their fully qualified path summaries.
	Paths map[ID]ItemSummary `json:"paths"`
	// ExternalCrates names the dependency units referenced by the graph.
	ExternalCrates map[string]ExternalCrate `json:"external_crates"`
	// FormatVersion is the document schema version.
	FormatVersion int `json:"format_version"`
}

// ItemSummary is the path and kind recorded for an Id, including Ids whose
// full item lives in another crate.
type ItemSummary struct {
	CrateID int      `json:"crate_id"`
	Path    []string `json:"path"`
	Kind    string   `json:"kind"`
}

// ExternalCrate identifies a dependency crate by name.
type ExternalCrate struct {
	Name        string `json:"name"`
	HTMLRootURL string `json:"html_root_url"`
}

// DecodeCrate parses one symbol graph document.
func DecodeCrate(r io.Reader) (*Crate, error) {
	var crate Crate
	if err := json.NewDecoder(r).Decode(&crate); err != nil {
		return nil, fmt.Errorf("failed to decode symbol graph: %w", err)
	}

	// Ids are keys in the index; items do not repeat them reliably across
	// producer versions, so stamp them here.
	for id, item := range crate.Index {
		item.ID = id
	}

	return &crate, nil
}

// PathString returns the "::"-joined summary path for an Id, or "" when the
// Id has no summary.
func (c *Crate) PathString(id ID) string {
	summary, ok := c.Paths[id]
	if !ok {
		return ""
	}

	return strings.Join(summary.Path, "::")
}

// Graph wraps a Crate with lookup state. A referenced Id that is absent from
// the index is recorded exactly once, in first-seen order; the lookup then
// reports the item as missing so the caller drops that unit of work.
type Graph struct {
	crate       *Crate
	missing     []ID
	missingSeen map[ID]struct{}
}

// NewGraph creates a Graph over an already-decoded crate.
func NewGraph(crate *Crate) *Graph {
	return &Graph{
		crate:       crate,
		missingSeen: make(map[ID]struct{}),
	}
}

// Crate returns the wrapped document.
func (g *Graph) Crate() *Crate {
	return g.crate
}

// Item returns the item for id, or nil if the index does not contain it. A
// miss is recorded to the missing-Id list on first occurrence only.
func (g *Graph) Item(id ID) *Item {
	item, ok := g.crate.Index[id]
	if !ok {
		if _, seen := g.missingSeen[id]; !seen {
			g.missingSeen[id] = struct{}{}
			g.missing = append(g.missing, id)
		}

		return nil
	}

	return item
}

// MissingIDs returns the Ids that were referenced but absent from the index,
// in first-seen order.
func (g *Graph) MissingIDs() []ID {
	out := make([]ID, len(g.missing))
	copy(out, g.missing)

	return out
}

// Summary returns the path summary for an Id.
func (g *Graph) Summary(id ID) (ItemSummary, bool) {
	summary, ok := g.crate.Paths[id]
	return summary, ok
}
