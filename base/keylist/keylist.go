// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., ids) to indexes,
to support fast lookup by key while preserving insertion order.
*/
package keylist

import (
	"fmt"
	"slices"
	"strings"
)

// List implements an ordered list (slice) of Values,
// with a map from a key to indexes, to support fast lookup.
// The zero value is usable without initialization.
type List[K comparable, V any] struct {

	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List].
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (kl *List[K, V]) makeIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// Set sets given key to given value, adding to the end of the list
// if not already present, and otherwise replacing with this new value
// in place. This is the same semantics as a Go map.
func (kl *List[K, V]) Set(key K, val V) {
	if kl.indexes == nil {
		kl.makeIndexes()
	}
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [List.AtTry]
// for one that returns a bool for missing keys.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if kl != nil {
		if idx, ok := kl.indexes[key]; ok {
			return kl.Values[idx], true
		}
	}
	var zv V
	return zv, false
}

// Has returns whether the given key is on the list.
func (kl *List[K, V]) Has(key K) bool {
	_, ok := kl.AtTry(key)
	return ok
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	if kl == nil {
		return -1
	}
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
// This is relatively slow because it needs to regenerate the
// index map; use [List.DeleteFunc] to delete many items at once.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx := kl.IndexByKey(key)
	if idx < 0 {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.makeIndexes()
	return true
}

// DeleteFunc deletes all items for which del returns true,
// preserving the order of the rest, and returns the number
// of deleted items. The index map is regenerated once.
func (kl *List[K, V]) DeleteFunc(del func(key K, val V) bool) int {
	n := 0
	for i := range kl.Keys {
		if del(kl.Keys[i], kl.Values[i]) {
			continue
		}
		kl.Keys[n] = kl.Keys[i]
		kl.Values[n] = kl.Values[i]
		n++
	}
	ndel := len(kl.Keys) - n
	if ndel == 0 {
		return 0
	}
	clear(kl.Keys[n:])
	clear(kl.Values[n:])
	kl.Keys = kl.Keys[:n]
	kl.Values = kl.Values[:n]
	kl.makeIndexes()
	return ndel
}

// Clone returns a shallow copy of the list: the returned list
// can be modified without affecting this one, but the values
// themselves are not copied.
func (kl *List[K, V]) Clone() *List[K, V] {
	if kl == nil {
		return New[K, V]()
	}
	nl := &List[K, V]{
		Values: slices.Clone(kl.Values),
		Keys:   slices.Clone(kl.Keys),
	}
	nl.makeIndexes()
	return nl
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, v := range kl.Values {
		fmt.Fprintf(&b, "%v: %v, ", kl.Keys[i], v)
	}
	b.WriteString("}")
	return b.String()
}
