package network

import (
	"sort"
	"strings"
	"unicode"

	"github.com/nexus-nlp/nexus/pkg/common"
)

// resolvedMention is a mention after alias resolution, carrying the canonical
// entity ID and its position in the document.
type resolvedMention struct {
	entityID      string
	sentenceIndex int
}

// resolution is the output of one resolver pass: the canonical entity set,
// the mention sequence remapped onto entity IDs (document order preserved),
// and the count of discarded malformed mentions.
type resolution struct {
	entities  []common.Entity
	mentions  []resolvedMention
	discarded int
}

type surfaceGroup struct {
	form      string         // normalized form, doubles as group key
	count     int            // total mentions of this form
	firstSeen int            // index of first appearance in the mention stream
	raw       map[string]int // raw surface -> occurrences
	rawFirst  map[string]int // raw surface -> first appearance index
	types     map[string]int // type tag -> occurrences
}

// resolve groups the mention stream by normalized surface form, merges forms
// that look like aliases of one referent, and maps every mention onto its
// canonical entity. Mentions whose surface normalizes to the empty string are
// discarded and counted, never fatal.
//
// The result is deterministic for a fixed mention sequence: groups are
// processed in first-appearance order and every map iteration below goes
// through a sorted slice first.
func (c *NetworkClient) resolve(mentions []common.Mention) *resolution {
	groups := make(map[string]*surfaceGroup)
	var order []string

	type rawMention struct {
		form          string
		sentenceIndex int
	}
	kept := make([]rawMention, 0, len(mentions))
	discarded := 0

	for i, m := range mentions {
		form := normalizeSurface(m.Surface)
		if form == "" {
			discarded++
			continue
		}

		g, ok := groups[form]
		if !ok {
			g = &surfaceGroup{
				form:      form,
				firstSeen: i,
				raw:       make(map[string]int),
				rawFirst:  make(map[string]int),
				types:     make(map[string]int),
			}
			groups[form] = g
			order = append(order, form)
		}
		g.count++
		if _, seen := g.raw[m.Surface]; !seen {
			g.rawFirst[m.Surface] = i
		}
		g.raw[m.Surface]++
		if m.Type != "" {
			g.types[m.Type]++
		}

		kept = append(kept, rawMention{form: form, sentenceIndex: m.SentenceIndex})
	}

	// Transitive alias merging via union-find over the normalized groups.
	parent := make(map[string]string, len(order))
	for _, form := range order {
		parent[form] = form
	}
	var find func(string) string
	find = func(f string) string {
		if parent[f] != f {
			parent[f] = find(parent[f])
		}
		return parent[f]
	}
	union := func(a, b string) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		// Root with the earlier first appearance wins, keeping merge results
		// independent of pair visiting order.
		if groups[rb].firstSeen < groups[ra].firstSeen {
			ra, rb = rb, ra
		}
		parent[rb] = ra
	}

	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if c.mergeable(order[i], order[j]) {
				union(order[i], order[j])
			}
		}
	}

	// Collect merged groups keyed by root, members in first-appearance order.
	members := make(map[string][]*surfaceGroup)
	var roots []string
	for _, form := range order {
		root := find(form)
		if _, ok := members[root]; !ok {
			roots = append(roots, root)
		}
		members[root] = append(members[root], groups[form])
	}

	entities := make([]common.Entity, 0, len(roots))
	formToID := make(map[string]string, len(order))

	for _, root := range roots {
		group := members[root]

		// Canonical form: longest, then most frequent, then first seen.
		canonical := group[0]
		for _, g := range group[1:] {
			if betterCanonical(g, canonical) {
				canonical = g
			}
		}

		displayName := pickDisplayName(canonical)
		entityType := pickEntityType(group)

		total := 0
		aliasSet := make(map[string]struct{})
		for _, g := range group {
			total += g.count
			for raw := range g.raw {
				aliasSet[raw] = struct{}{}
			}
		}
		aliases := make([]string, 0, len(aliasSet))
		for a := range aliasSet {
			aliases = append(aliases, a)
		}
		sort.Strings(aliases)

		entity := common.Entity{
			ID:           canonical.form,
			Name:         displayName,
			Aliases:      aliases,
			Type:         entityType,
			MentionCount: total,
		}
		entities = append(entities, entity)

		for _, g := range group {
			formToID[g.form] = entity.ID
		}
	}

	resolved := make([]resolvedMention, 0, len(kept))
	for _, m := range kept {
		resolved = append(resolved, resolvedMention{
			entityID:      formToID[m.form],
			sentenceIndex: m.sentenceIndex,
		})
	}

	return &resolution{
		entities:  entities,
		mentions:  resolved,
		discarded: discarded,
	}
}

// mergeable reports whether two normalized forms belong to the same referent.
// One form must be a prefix, suffix, or whole-word substring of the other,
// and the shorter form must meet the minimum length so that short common
// tokens (titles, initials) never trigger a merge.
func (c *NetworkClient) mergeable(a, b string) bool {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) < c.aliasMinLength || shorter == longer {
		return false
	}
	// Normalized forms are single-space separated, so padded containment
	// covers prefix, suffix, and whole-word substring at once.
	return strings.Contains(" "+longer+" ", " "+shorter+" ")
}

func betterCanonical(g, current *surfaceGroup) bool {
	if len(g.form) != len(current.form) {
		return len(g.form) > len(current.form)
	}
	if g.count != current.count {
		return g.count > current.count
	}
	return g.firstSeen < current.firstSeen
}

// pickDisplayName returns the most frequent raw spelling of the canonical
// form, ties broken by first appearance.
func pickDisplayName(g *surfaceGroup) string {
	raws := make([]string, 0, len(g.raw))
	for raw := range g.raw {
		raws = append(raws, raw)
	}
	sort.Strings(raws)

	best := ""
	bestCount := -1
	bestFirst := -1
	for _, raw := range raws {
		count := g.raw[raw]
		first := g.rawFirst[raw]
		if count > bestCount || (count == bestCount && first < bestFirst) {
			best = raw
			bestCount = count
			bestFirst = first
		}
	}
	return strings.TrimSpace(best)
}

// pickEntityType returns the most frequent type tag across the merged group,
// ties broken lexicographically. Empty when no mention carried a tag.
func pickEntityType(group []*surfaceGroup) string {
	counts := make(map[string]int)
	for _, g := range group {
		for typ, n := range g.types {
			counts[typ] += n
		}
	}
	if len(counts) == 0 {
		return ""
	}

	types := make([]string, 0, len(counts))
	for typ := range counts {
		types = append(types, typ)
	}
	sort.Strings(types)

	best := types[0]
	for _, typ := range types[1:] {
		if counts[typ] > counts[best] {
			best = typ
		}
	}
	return best
}

// normalizeSurface case-folds, strips punctuation, and collapses whitespace.
// The normalized form is the grouping key and, for canonical forms, the
// stable entity ID.
func normalizeSurface(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
