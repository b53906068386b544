package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadItems reads and parses an items.json file.
func LoadItems(path string) (*ItemGraph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	g, err := ParseItems(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// ParseItems builds an ItemGraph from the items.json document.
//
// Elements and their recipe lists keep document order; reachability scores
// depend on it. Only elements that pass the validity filter are checked
// against the schema, the rest are kept by name only.
func ParseItems(itemsJSON string) (*ItemGraph, error) {
	if !gjson.Valid(itemsJSON) {
		return nil, ErrMalformedJSON
	}
	root := gjson.Parse(itemsJSON)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformedJSON)
	}

	g := newItemGraph()
	var perr error
	root.ForEach(func(k, v gjson.Result) bool {
		name := k.String()
		if !isValidElement(name) {
			g.put(Element{Name: name})
			return true
		}
		e, err := parseElement(name, v)
		if err != nil {
			perr = err
			return false
		}
		g.put(e)
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return g, nil
}

func parseElement(name string, v gjson.Result) (Element, error) {
	if !v.IsObject() {
		return Element{}, fmt.Errorf("%w: element %q is not an object", ErrSchema, name)
	}
	depth := v.Get("depth")
	if depth.Type != gjson.Number {
		return Element{}, fmt.Errorf("%w: element %q has no numeric depth", ErrSchema, name)
	}
	if float64(depth.Int()) != depth.Num {
		return Element{}, fmt.Errorf("%w: element %q depth %v is not an integer", ErrSchema, name, depth.Num)
	}

	e := Element{Name: name, Depth: int(depth.Int())}
	recipes := v.Get("recipes")
	if !recipes.Exists() {
		return e, nil
	}
	if !recipes.IsArray() {
		return Element{}, fmt.Errorf("%w: element %q recipes is not a list", ErrSchema, name)
	}

	var rerr error
	recipes.ForEach(func(_, r gjson.Result) bool {
		item1, item2 := r.Get("item_1"), r.Get("item_2")
		if item1.Type != gjson.String || item2.Type != gjson.String {
			rerr = fmt.Errorf("%w: element %q recipe %d needs string item_1 and item_2", ErrSchema, name, len(e.Recipes))
			return false
		}
		e.Recipes = append(e.Recipes, Recipe{Item1: item1.String(), Item2: item2.String()})
		return true
	})
	if rerr != nil {
		return Element{}, rerr
	}
	return e, nil
}
