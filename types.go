package main

import "errors"

var (
	// ErrMalformedJSON is returned when items.json is not a JSON object.
	ErrMalformedJSON = errors.New("malformed items json")
	// ErrSchema is returned when a valid element is missing a required field.
	ErrSchema = errors.New("items schema violation")
	// ErrUnknownElement is returned when a combination operand has no depth.
	ErrUnknownElement = errors.New("unknown element")
	// ErrUnknownCombination is returned when a recipe has no combination depth.
	ErrUnknownCombination = errors.New("unknown combination")
)

// Recipe is a pair of element names that combine into some result element.
type Recipe struct {
	Item1 string
	Item2 string
}

// Element is one record of items.json.
type Element struct {
	Name    string
	Depth   int
	Recipes []Recipe
}

// Combination is a concrete (operand, operand, result) triple.
type Combination struct {
	A, B   string
	Result string
}

// ItemGraph holds the elements of items.json in document order.
type ItemGraph struct {
	Elements []Element
	byName   map[string]int // index into Elements
}

func newItemGraph() *ItemGraph {
	return &ItemGraph{byName: make(map[string]int)}
}

// put appends e, or replaces an earlier element of the same name in place.
func (g *ItemGraph) put(e Element) {
	if i, ok := g.byName[e.Name]; ok {
		g.Elements[i] = e
		return
	}
	g.byName[e.Name] = len(g.Elements)
	g.Elements = append(g.Elements, e)
}

// Lookup returns the element with the given name.
func (g *ItemGraph) Lookup(name string) (*Element, bool) {
	i, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return &g.Elements[i], true
}

// ElementDepths maps valid element names to their depth, keeping insertion order.
type ElementDepths struct {
	names []string
	depth map[string]int
}

func newElementDepths() *ElementDepths {
	return &ElementDepths{depth: make(map[string]int)}
}

func (d *ElementDepths) add(name string, depth int) {
	if _, ok := d.depth[name]; !ok {
		d.names = append(d.names, name)
	}
	d.depth[name] = depth
}

// Len returns the number of valid elements.
func (d *ElementDepths) Len() int { return len(d.names) }

// Names returns the valid element names in insertion order.
func (d *ElementDepths) Names() []string { return d.names }

// Depth returns the depth of a valid element.
func (d *ElementDepths) Depth(name string) (int, bool) {
	v, ok := d.depth[name]
	return v, ok
}

// Has reports whether name is a valid element.
func (d *ElementDepths) Has(name string) bool {
	_, ok := d.depth[name]
	return ok
}

// CombinationDepths maps each distinct combination to its depth, in first-seen order.
type CombinationDepths struct {
	order []Combination
	depth map[Combination]int
}

func newCombinationDepths() *CombinationDepths {
	return &CombinationDepths{depth: make(map[Combination]int)}
}

func (c *CombinationDepths) set(k Combination, depth int) {
	if _, ok := c.depth[k]; !ok {
		c.order = append(c.order, k)
	}
	c.depth[k] = depth
}

// Len returns the number of distinct combinations.
func (c *CombinationDepths) Len() int { return len(c.order) }

// Combinations returns the distinct combinations in first-seen order.
func (c *CombinationDepths) Combinations() []Combination { return c.order }

// Depth returns the depth of a combination.
func (c *CombinationDepths) Depth(k Combination) (int, bool) {
	v, ok := c.depth[k]
	return v, ok
}

// Reachability holds one score per valid element, in element order.
type Reachability struct {
	names []string
	score map[string]float64
}

func newReachability() *Reachability {
	return &Reachability{score: make(map[string]float64)}
}

func (r *Reachability) set(name string, v float64) {
	if _, ok := r.score[name]; !ok {
		r.names = append(r.names, name)
	}
	r.score[name] = v
}

// Names returns the scored element names in order.
func (r *Reachability) Names() []string { return r.names }

// Score returns the reachability of an element.
func (r *Reachability) Score(name string) (float64, bool) {
	v, ok := r.score[name]
	return v, ok
}

// Dataset is everything one generator run derives from items.json.
type Dataset struct {
	Elements          *ElementDepths
	Combinations      []Combination // extraction output, duplicates included
	ByResult          map[string][]Recipe
	CombinationDepths *CombinationDepths
	Reachability      *Reachability
}
