package network

import (
	"container/heap"
	"math"
	"sort"

	"github.com/nexus-nlp/nexus/pkg/common"
)

// Shortest-path convention: edge distance is the inverse of the accumulated
// co-occurrence weight, so strongly connected entities are "close". All
// traversals visit nodes in sorted ID order, which keeps every floating-point
// result independent of map iteration order.
const distanceEpsilon = 1e-9

type neighbor struct {
	id   string
	dist float64
}

// computeMetrics calculates degree, weighted degree, betweenness, and
// closeness for every node, plus the number of connected components.
//
// Betweenness uses Brandes accumulation over weighted shortest paths, halved
// for the undirected graph and normalized by (n-1)(n-2)/2 within each
// connected component (0 for components smaller than 3). Closeness is
// reachable/sum(dist) over the node's own component; an isolated node
// reports 0. Cross-component distances contribute nothing, by definition.
func computeMetrics(entities []common.Entity, edges []common.Edge) (map[string]common.NodeMetrics, int) {
	nodes := make([]string, 0, len(entities))
	for _, e := range entities {
		nodes = append(nodes, e.ID)
	}
	sort.Strings(nodes)

	adjacency := make(map[string][]neighbor, len(nodes))
	degree := make(map[string]int, len(nodes))
	weighted := make(map[string]float64, len(nodes))
	for _, id := range nodes {
		adjacency[id] = nil
	}

	for _, e := range edges {
		dist := math.Inf(1)
		if e.Weight > 0 {
			dist = 1 / e.Weight
		}
		adjacency[e.Source] = append(adjacency[e.Source], neighbor{id: e.Target, dist: dist})
		adjacency[e.Target] = append(adjacency[e.Target], neighbor{id: e.Source, dist: dist})
		degree[e.Source]++
		degree[e.Target]++
		weighted[e.Source] += e.Weight
		weighted[e.Target] += e.Weight
	}
	for _, id := range nodes {
		sort.Slice(adjacency[id], func(i, j int) bool {
			return adjacency[id][i].id < adjacency[id][j].id
		})
	}

	component, componentSize, componentCount := connectedComponents(nodes, adjacency)

	betweenness := make(map[string]float64, len(nodes))
	closeness := make(map[string]float64, len(nodes))

	for _, source := range nodes {
		dist, sigma, preds, settled := dijkstra(source, nodes, adjacency)

		reachable := 0
		distSum := 0.0
		for _, id := range settled {
			if id == source {
				continue
			}
			reachable++
			distSum += dist[id]
		}
		if reachable > 0 && distSum > 0 {
			closeness[source] = float64(reachable) / distSum
		}

		// Brandes dependency accumulation, farthest settled node first.
		delta := make(map[string]float64, len(settled))
		for i := len(settled) - 1; i >= 0; i-- {
			w := settled[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	metrics := make(map[string]common.NodeMetrics, len(nodes))
	for _, id := range nodes {
		bc := 0.0
		n := componentSize[component[id]]
		if n >= 3 {
			pairs := float64(n-1) * float64(n-2) / 2
			// Each undirected path is found from both endpoints.
			bc = betweenness[id] / 2 / pairs
		}
		metrics[id] = common.NodeMetrics{
			Degree:         degree[id],
			WeightedDegree: weighted[id],
			Betweenness:    bc,
			Closeness:      closeness[id],
		}
	}

	return metrics, componentCount
}

// connectedComponents labels every node with a component index and returns
// the per-component sizes and the component count.
func connectedComponents(nodes []string, adjacency map[string][]neighbor) (map[string]int, map[int]int, int) {
	component := make(map[string]int, len(nodes))
	size := make(map[int]int)
	next := 0

	for _, start := range nodes {
		if _, seen := component[start]; seen {
			continue
		}
		queue := []string{start}
		component[start] = next
		size[next] = 1
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range adjacency[cur] {
				if _, seen := component[nb.id]; seen {
					continue
				}
				component[nb.id] = next
				size[next]++
				queue = append(queue, nb.id)
			}
		}
		next++
	}

	return component, size, next
}

// dijkstra returns shortest-path distances from source, the number of
// shortest paths per node (sigma), the shortest-path predecessor lists, and
// the settled nodes in non-decreasing distance order.
func dijkstra(source string, nodes []string, adjacency map[string][]neighbor) (map[string]float64, map[string]float64, map[string][]string, []string) {
	dist := make(map[string]float64, len(nodes))
	sigma := make(map[string]float64, len(nodes))
	preds := make(map[string][]string, len(nodes))
	done := make(map[string]bool, len(nodes))
	var settled []string

	dist[source] = 0
	sigma[source] = 1

	pq := &nodeQueue{{id: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		if done[item.id] {
			continue
		}
		done[item.id] = true
		settled = append(settled, item.id)

		for _, nb := range adjacency[item.id] {
			if math.IsInf(nb.dist, 1) {
				continue
			}
			alt := dist[item.id] + nb.dist
			cur, known := dist[nb.id]
			switch {
			case !known || alt < cur-distanceEpsilon:
				dist[nb.id] = alt
				sigma[nb.id] = sigma[item.id]
				preds[nb.id] = []string{item.id}
				heap.Push(pq, nodeItem{id: nb.id, dist: alt})
			case math.Abs(alt-cur) <= distanceEpsilon:
				sigma[nb.id] += sigma[item.id]
				preds[nb.id] = append(preds[nb.id], item.id)
			}
		}
	}

	return dist, sigma, preds, settled
}

type nodeItem struct {
	id   string
	dist float64
}

// nodeQueue is a min-heap over (distance, id); the ID tie-break keeps pop
// order deterministic.
type nodeQueue []nodeItem

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].id < q[j].id
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(nodeItem)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
